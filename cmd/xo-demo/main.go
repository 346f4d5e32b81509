// Command xo-demo exercises every style/flag combination the xo package
// supports, one inventory listing rendered first as a fixed-width table and
// then as a label/value report, the direct Go port of
// original_source/libxo/libxo.c's UNIT_TEST main.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ansel1/go-xo"
)

type item struct {
	title   string
	sold    uint
	inStock uint
	onOrder uint
	skuBase string
	skuNum  uint
}

var inventory = []item{
	{"gum", 1412, 54, 10, "GRO", 415},
	{"rope", 85, 4, 2, "HRD", 212},
	{"ladder", 0, 2, 1, "HRD", 517},
	{"bolt", 4123, 144, 42, "HRD", 632},
	{"water", 17, 14, 2, "GRO", 2331},
}

var fishOnly = []item{
	{"fish", 1321, 45, 1, "GRO", 533},
}

var infoTable = []xo.InfoEntry{
	{Name: "in-stock", Type: "number", Help: "Number of items in stock"},
	{Name: "name", Type: "string", Help: "Name of the item"},
	{Name: "on-order", Type: "number", Help: "Number of items on order"},
	{Name: "sku", Type: "string", Help: "Stock Keeping Unit"},
	{Name: "sold", Type: "number", Help: "Number of items sold"},
}

func main() {
	styleName := flag.String("style", "text", "output style: text, xml, json, html")
	pretty := flag.Bool("pretty", false, "pretty-print structural output")
	xpath := flag.Bool("xpath", false, "include HTML data-xpath breadcrumbs")
	info := flag.Bool("info", false, "include HTML data-type/data-help attributes")
	warn := flag.Bool("warn", false, "report shape mismatches and format-string anomalies")
	escape := flag.Bool("escape", false, "escape XML/JSON/HTML special characters")
	flag.Parse()

	style, err := parseStyle(*styleName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var flags xo.Flags
	if *pretty {
		flags |= xo.Pretty
	}
	if *xpath {
		flags |= xo.Xpath
	}
	if *info {
		flags |= xo.Info
	}
	if *warn {
		flags |= xo.Warn
	}
	if *escape {
		flags |= xo.Escape
	}

	h := xo.New(style, flags)
	h.SetInfo(infoTable)
	defer h.Destroy()

	h.OpenContainer("top")

	h.OpenContainer("data")
	h.OpenList("item")
	h.Emit("{T:Item/%-10s}{T:Total Sold/%12s}{T:In Stock/%12s}" +
		"{T:On Order/%12s}{T:SKU/%5s}\n")
	for _, it := range inventory {
		h.OpenInstance("item")
		h.Emit("{:item/%-10s/%s}{:sold/%12d/%d}{:in-stock/%12d/%d}"+
			"{:on-order/%12d/%d}{:sku/%5s-000-%d/%s-000-%d}\n",
			it.title, it.sold, it.inStock, it.onOrder, it.skuBase, it.skuNum)
		h.CloseInstance("item")
	}
	h.CloseList("item")
	h.CloseContainer("data")

	h.Emit("\n\n")

	for _, rows := range [][]item{inventory, fishOnly} {
		h.OpenContainer("data")
		h.OpenList("item")
		for _, it := range rows {
			h.OpenInstance("item")
			h.Emit("{L:Item} '{:name/%s}':\n", it.title)
			sold := fmt.Sprintf("%d", it.sold)
			if it.sold != 0 {
				sold += ".0"
			}
			h.Emit("{P:   }{L:Total sold}: {N:sold/%s}\n", sold)
			h.Emit("{P:   }{LWC:In stock}{:in-stock/%d}\n", it.inStock)
			h.Emit("{P:   }{LWC:On order}{:on-order/%d}\n", it.onOrder)
			h.Emit("{P:   }{L:SKU}: {Q:sku/%s-000-%d}\n", it.skuBase, it.skuNum)
			h.CloseInstance("item")
		}
		h.CloseList("item")
		h.CloseContainer("data")
	}

	h.CloseContainer("top")
}

func parseStyle(name string) (xo.Style, error) {
	switch name {
	case "text":
		return xo.Text, nil
	case "xml":
		return xo.Xml, nil
	case "json":
		return xo.Json, nil
	case "html":
		return xo.Html, nil
	default:
		return 0, fmt.Errorf("xo-demo: unknown -style %q", name)
	}
}
