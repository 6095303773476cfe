package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/timeline-dev/timeline/internal/model"
	"github.com/timeline-dev/timeline/internal/shopping"
)

func newShopCommand() *cobra.Command {
	var dir string

	shopCmd := &cobra.Command{
		Use:   "shop",
		Short: "Manage the shopping list",
	}
	dirFlag(shopCmd, &dir)
	shopCmd.AddCommand(newShopAddCommand(&dir))
	shopCmd.AddCommand(newShopBoughtCommand(&dir))
	shopCmd.AddCommand(newShopRmCommand(&dir))
	shopCmd.AddCommand(newShopListCommand(&dir))
	return shopCmd
}

func newShopAddCommand(dir *string) *cobra.Command {
	var price string
	var priority string
	var comment string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an item to buy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShopAdd(*dir, shopping.ItemParams{
				Name:          args[0],
				ExpectedPrice: shopping.ParsePrice(price),
				Priority:      model.Priority(priority),
				Comment:       comment,
			})
		},
	}

	cmd.Flags().StringVar(&price, "price", "", "expected price (optional)")
	cmd.Flags().StringVar(&priority, "priority", "medium", "low, medium or high")
	cmd.Flags().StringVar(&comment, "comment", "", "free-form comment")

	return cmd
}

func runShopAdd(dir string, params shopping.ItemParams) error {
	a, err := openApp(dir)
	if err != nil {
		return err
	}
	defer a.Close()

	item, err := a.shopping.AddItem(params)
	if err != nil {
		return err
	}

	fmt.Printf("Added %q (%s priority, est. %s)\n",
		item.Name, item.Priority, a.currency(item.ExpectedPrice.StringFixed(2)))
	return nil
}

func newShopBoughtCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "bought <item-id>",
		Short: "Toggle an item's bought flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShopBought(*dir, args[0])
		},
	}
}

func runShopBought(dir, itemID string) error {
	a, err := openApp(dir)
	if err != nil {
		return err
	}
	defer a.Close()

	item, err := a.shopping.ToggleBought(itemID)
	if err != nil {
		return err
	}

	state := "bought"
	if !item.Bought {
		state = "back on the list"
	}
	fmt.Printf("%q %s\n", item.Name, state)
	return nil
}

func newShopRmCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <item-id>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShopRm(*dir, args[0])
		},
	}
}

func runShopRm(dir, itemID string) error {
	a, err := openApp(dir)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.shopping.Delete(itemID); err != nil {
		return err
	}
	fmt.Println("Item deleted")
	return nil
}

func newShopListCommand(dir *string) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List items to buy with the estimated cost",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShopList(*dir, all)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include bought items")

	return cmd
}

func runShopList(dir string, all bool) error {
	a, err := openApp(dir)
	if err != nil {
		return err
	}
	defer a.Close()

	items := a.shopping.Items()
	shown := shopping.Pending(items)
	if all {
		shown = shopping.SortItems(items)
	}
	if len(shown) == 0 {
		fmt.Println("Nothing to buy.")
		return nil
	}

	for _, it := range shown {
		mark := " "
		if it.Bought {
			mark = "x"
		}
		price := ""
		if !it.ExpectedPrice.IsZero() {
			price = "  " + a.currency(it.ExpectedPrice.StringFixed(2))
		}
		fmt.Printf("  [%s] %-8s %s%s  (%s)\n", mark, it.Priority, it.Name, price, it.ID)
	}
	fmt.Printf("Estimated cost: %s\n", a.currency(shopping.EstimatedCost(items).StringFixed(2)))
	return nil
}
