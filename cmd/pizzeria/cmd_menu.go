package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lor/pizzeria/internal/catalog"
	"github.com/lor/pizzeria/internal/store"
	"github.com/spf13/cobra"
)

func newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu [location]",
		Short: "Show the menu of one store, or of every store",
		Long: `Show store menus without placing an order.

Examples:
  pizzeria menu                 # all stores
  pizzeria menu "gold coast"    # one store
  pizzeria menu sydney --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			var stores []*store.Store
			if len(args) == 1 {
				st, err := store.Resolve(env.catalog, args[0])
				if err != nil {
					if jsonOut {
						return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]interface{}{
							"error":     err.Error(),
							"locations": env.catalog.Locations(),
						})
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Unknown store location %q. Available: %s\n",
						strings.TrimSpace(args[0]), strings.Join(env.catalog.Locations(), ", "))
					return nil
				}
				stores = append(stores, st)
			} else {
				for _, loc := range env.catalog.Locations() {
					st, err := store.Resolve(env.catalog, loc)
					if err != nil {
						return err
					}
					stores = append(stores, st)
				}
			}

			if jsonOut {
				menus := make([]catalog.StoreMenu, 0, len(stores))
				for _, st := range stores {
					menus = append(menus, catalog.StoreMenu{Location: st.Location(), Pizzas: st.Menu()})
				}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]interface{}{
					"stores": menus,
					"count":  len(menus),
				})
			}

			for i, st := range stores {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", st.Location())
				if err := st.WriteMenu(cmd.OutOrStdout()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newToppingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toppings",
		Short: "List the additional toppings that can be added to any pizza",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			toppings := env.catalog.ToppingAllowList()
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]interface{}{
					"toppings": toppings,
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Additional toppings (free of charge):")
			for _, t := range toppings {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", t)
			}
			return nil
		},
	}
}
