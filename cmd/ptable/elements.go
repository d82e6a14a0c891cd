package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/five82/ptable/internal/app"
	"github.com/five82/ptable/internal/catalog"
)

// --- show ---

func newShowCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <symbol|name|number>",
		Short: "Print the details of one element",
		Example: `  ptable show Fe
  ptable show iron
  ptable show 26`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Load(root.options())
			if err != nil {
				return err
			}
			el, err := session.Catalog.Lookup(args[0])
			if err != nil {
				return err
			}
			printElement(cmd.OutOrStdout(), el)
			return nil
		},
	}
}

func printElement(w io.Writer, el catalog.Element) {
	fmt.Fprintf(w, "%s  %s\n", el.Symbol, el.Name)
	fmt.Fprintf(w, "Atomic Number: %d\n", el.AtomicNumber)
	fmt.Fprintf(w, "Atomic Mass: %s\n", el.AtomicMass)
	fmt.Fprintf(w, "Category: %s\n", catalog.Label(el.Category))
	fmt.Fprintf(w, "Electron Configuration: %s\n", el.ElectronConfig)
	fmt.Fprintf(w, "Phase: %s\n", el.Phase.Title())
	fmt.Fprintf(w, "Discovered: %s\n", el.Discovered)
}

// --- list ---

type listFlags struct {
	search   string
	category string
}

func newListCmd(root *rootFlags) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List elements in table order",
		Long:  `List the elements that pass the search and category filters, in the order the table lays them out.`,
		Example: `  ptable list
  ptable list --search ne
  ptable list --category noble-gas
  ptable list --search ium --category "Alkaline Earth Metal"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Load(root.options())
			if err != nil {
				return err
			}
			elements := session.Filter(flags.search, catalog.ParseCategory(flags.category))
			printList(cmd.OutOrStdout(), elements)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.search, "search", "", "Substring of symbol, name or atomic number")
	cmd.Flags().StringVar(&flags.category, "category", "", "Category tag or label (default all)")

	return cmd
}

func printList(w io.Writer, elements []catalog.Element) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NUMBER\tSYMBOL\tNAME\tCATEGORY\tMASS")
	for _, el := range elements {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", el.AtomicNumber, el.Symbol, el.Name, catalog.Label(el.Category), el.AtomicMass)
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%d elements\n", len(elements))
}

// --- categories ---

func newCategoriesCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List element categories with counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Load(root.options())
			if err != nil {
				return err
			}
			counts := session.Catalog.CountByCategory()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "TAG\tLABEL\tCOUNT")
			for _, c := range catalog.Categories() {
				fmt.Fprintf(tw, "%s\t%s\t%d\n", c, catalog.Label(c), counts[c])
			}
			return tw.Flush()
		},
	}
}
