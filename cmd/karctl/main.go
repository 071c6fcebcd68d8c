// Command karctl is a terminal storefront for the configurator API.
//
//	karctl [-api URL] [-key KEY] options
//	karctl quote  [-engine ID] [-paint ID] [-wheels ID] [-extras ID,ID]
//	karctl link   [-engine ID] [-paint ID] [-wheels ID] [-extras ID,ID]
//	karctl open   URL
//	karctl order  -email E -first F -last L [-link URL | selection flags]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"oss-kar/internal/model"
	"oss-kar/internal/storefront"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	global := flag.NewFlagSet("karctl", flag.ContinueOnError)
	apiURL := global.String("api", envOr("KARCTL_API", "http://localhost:3001"), "API base URL")
	apiKey := global.String("key", os.Getenv("KARCTL_API_KEY"), "API key")
	verbose := global.Bool("v", false, "log API calls")
	if err := global.Parse(args); err != nil {
		return err
	}

	if global.NArg() == 0 {
		return errors.New("missing command: options, quote, link, open or order")
	}

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := storefront.NewClient(*apiURL, logger, storefront.WithAPIKey(*apiKey))

	cmd, rest := global.Arg(0), global.Args()[1:]
	switch cmd {
	case "options":
		return runOptions(ctx, client, out)
	case "quote":
		return runQuote(ctx, client, rest, out)
	case "link":
		return runLink(ctx, client, rest, out)
	case "open":
		return runOpen(ctx, client, rest, out)
	case "order":
		return runOrder(ctx, client, rest, out)
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func runOptions(ctx context.Context, client *storefront.Client, out io.Writer) error {
	catalog, err := client.Options(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tID\tNAME\tPRICE")
	for _, group := range [][]model.Option{catalog.Engine, catalog.Paint, catalog.Wheels, catalog.Extras} {
		for _, o := range group {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", o.Category, o.ID, o.Name, storefront.FormatPrice(o.Price))
		}
	}
	return tw.Flush()
}

func runQuote(ctx context.Context, client *storefront.Client, args []string, out io.Writer) error {
	session, err := sessionFromFlags(ctx, client, "quote", args)
	if err != nil {
		return err
	}

	quote, err := client.Calculate(ctx, session.Selection())
	if err != nil {
		return err
	}
	printQuote(out, quote)
	return nil
}

func runLink(ctx context.Context, client *storefront.Client, args []string, out io.Writer) error {
	session, err := sessionFromFlags(ctx, client, "link", args)
	if err != nil {
		return err
	}

	link, err := client.Generate(ctx, session.Selection())
	if err != nil {
		return err
	}
	fmt.Fprintln(out, link.FullURL)
	return nil
}

func runOpen(ctx context.Context, client *storefront.Client, args []string, out io.Writer) error {
	if len(args) != 1 {
		return errors.New("usage: karctl open URL")
	}

	catalog, err := client.Options(ctx)
	if err != nil {
		return err
	}
	session := storefront.NewSession(catalog)
	if dropped := session.LoadLink(args[0]); len(dropped) > 0 {
		fmt.Fprintf(out, "Ignored unknown or excess options: %v\n", dropped)
	}

	sel := session.Selection()
	printSelection(out, catalog, sel)

	quote, err := client.Calculate(ctx, sel)
	if err != nil {
		return err
	}
	printQuote(out, quote)
	return nil
}

func runOrder(ctx context.Context, client *storefront.Client, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("order", flag.ContinueOnError)
	email := fs.String("email", "", "customer email")
	first := fs.String("first", "", "first name")
	last := fs.String("last", "", "last name")
	link := fs.String("link", "", "shareable configuration link")
	flags := selectionFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	catalog, err := client.Options(ctx)
	if err != nil {
		return err
	}
	session := storefront.NewSession(catalog)
	if *link != "" {
		session.LoadLink(*link)
	} else if err := flags.apply(session); err != nil {
		return err
	}

	wizard := storefront.NewWizard(client, session)
	if err := wizard.SubmitEmail(*email); err != nil {
		return err
	}
	if err := wizard.SubmitDetails(*first, *last); err != nil {
		return err
	}

	resp, err := wizard.Confirm(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s\nOrder: %d\nConfiguration: %s\n", resp.Message, resp.OrderID, resp.ConfigID)
	printQuote(out, &resp.Quote)
	return nil
}

func printSelection(out io.Writer, catalog *model.Catalog, sel model.Selection) {
	name := func(id *int64) string {
		if id == nil {
			return "-"
		}
		if o, ok := catalog.Find(*id); ok {
			return o.Name
		}
		return strconv.FormatInt(*id, 10)
	}
	extras := make([]string, len(sel.ExtrasIDs))
	for i, id := range sel.ExtrasIDs {
		extras[i] = name(&id)
	}

	fmt.Fprintf(out, "Engine: %s\nPaint: %s\nWheels: %s\nExtras: %s\n",
		name(sel.EngineID), name(sel.PaintID), name(sel.WheelsID), strings.Join(extras, ", "))
}

func printQuote(out io.Writer, quote *model.Quote) {
	b := quote.Breakdown
	fmt.Fprintf(out, "Base: %s\n", storefront.FormatPrice(b.BasePrice))
	for _, line := range []struct {
		label string
		value *decimal.Decimal
	}{
		{"Engine", b.Engine},
		{"Paint", b.Paint},
		{"Wheels", b.Wheels},
		{"Extras", b.Extras},
	} {
		if line.value != nil {
			fmt.Fprintf(out, "%s: %s\n", line.label, storefront.FormatPrice(*line.value))
		}
	}
	fmt.Fprintf(out, "Total: %s\n", storefront.FormatPrice(quote.TotalPrice))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
