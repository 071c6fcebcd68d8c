package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"oss-kar/internal/storefront"
)

// selection holds the option flags shared by quote, link and order.
type selection struct {
	engine *int64
	paint  *int64
	wheels *int64
	extras idList
}

// idList parses comma separated ids, e.g. "4,5".
type idList []int64

func (l *idList) String() string {
	parts := make([]string, len(*l))
	for i, id := range *l {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}

func (l *idList) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", part)
		}
		*l = append(*l, id)
	}
	return nil
}

func selectionFlags(fs *flag.FlagSet) *selection {
	s := &selection{
		engine: fs.Int64("engine", -1, "engine option id"),
		paint:  fs.Int64("paint", -1, "paint option id"),
		wheels: fs.Int64("wheels", -1, "wheels option id"),
	}
	fs.Var(&s.extras, "extras", "comma separated extra option ids")
	return s
}

// apply copies the flags into session; -1 leaves a category empty.
func (s *selection) apply(session *storefront.Session) error {
	set := []struct {
		id int64
		fn func(int64) error
	}{
		{*s.engine, session.SetEngine},
		{*s.paint, session.SetPaint},
		{*s.wheels, session.SetWheels},
	}
	for _, x := range set {
		if x.id < 0 {
			continue
		}
		if err := x.fn(x.id); err != nil {
			return err
		}
	}

	for _, id := range s.extras {
		if _, err := session.ToggleExtra(id); err != nil {
			return err
		}
	}
	return nil
}

func sessionFromFlags(ctx context.Context, client *storefront.Client, name string, args []string) (*storefront.Session, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	flags := selectionFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	catalog, err := client.Options(ctx)
	if err != nil {
		return nil, err
	}

	session := storefront.NewSession(catalog)
	if err := flags.apply(session); err != nil {
		return nil, err
	}
	return session, nil
}
