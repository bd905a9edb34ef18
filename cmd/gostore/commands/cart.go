package commands

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.trai.ch/gostore/internal/core/domain"
	"go.trai.ch/gostore/internal/engine/cart"
)

// loaded performs the initial cart load and returns the manager from the command context.
func (c *CLI) loaded(cmd *cobra.Command) (*cart.Manager, error) {
	if err := c.app.Load(cmd.Context()); err != nil {
		return nil, err
	}
	return cart.FromContext(cmd.Context()), nil
}

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := c.loaded(cmd)
			if err != nil {
				return err
			}
			printCart(cmd, m.Products(), m.Summary())
			return nil
		},
	}
}

func (c *CLI) newAddCmd() *cobra.Command {
	var p domain.Product
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add one unit of a product to the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := c.loaded(cmd)
			if err != nil {
				return err
			}
			if err := m.AddToCart(cmd.Context(), p); err != nil {
				return err
			}
			printCart(cmd, m.Products(), m.Summary())
			return nil
		},
	}
	cmd.Flags().StringVar(&p.ID, "id", "", "Product id")
	cmd.Flags().StringVar(&p.Title, "title", "", "Product title")
	cmd.Flags().StringVar(&p.ImageURL, "image", "", "Product image URL")
	cmd.Flags().Float64Var(&p.Price, "price", 0, "Unit price")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func (c *CLI) newIncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inc <id>",
		Short: "Add one unit of a cart item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.loaded(cmd)
			if err != nil {
				return err
			}
			if err := m.Increment(cmd.Context(), args[0]); err != nil {
				return err
			}
			printCart(cmd, m.Products(), m.Summary())
			return nil
		},
	}
}

func (c *CLI) newDecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dec <id>",
		Short: "Remove one unit of a cart item, dropping it at zero",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.loaded(cmd)
			if err != nil {
				return err
			}
			if err := m.Decrement(cmd.Context(), args[0]); err != nil {
				return err
			}
			printCart(cmd, m.Products(), m.Summary())
			return nil
		},
	}
}

func (c *CLI) newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive cart view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Browse(cmd.Context())
		},
	}
}

func printCart(cmd *cobra.Command, items domain.Cart, summary domain.Summary) {
	out := cmd.OutOrStdout()
	if len(items) == 0 {
		_, _ = fmt.Fprintln(out, "Cart is empty.")
		return
	}

	t := table.New().Headers("ID", "TITLE", "PRICE", "QTY")
	for _, item := range items {
		t.Row(item.ID, item.Title, fmt.Sprintf("%.2f", item.Price), strconv.Itoa(item.Quantity))
	}
	_, _ = fmt.Fprintln(out, t.Render())
	_, _ = fmt.Fprintf(out, "%d items, %d units, total %.2f\n", summary.Lines, summary.Units, summary.Total)
}
