package event_test

import (
	"context"
	"fmt"

	"github.com/randalmurphal/tokens/pkg/tokens"
	"github.com/randalmurphal/tokens/pkg/tokens/event"
)

func ExampleNavigator() {
	ctx := context.Background()

	bus := event.NewBus(event.DefaultBusConfig)
	defer bus.Close()
	nav := event.NewNavigator(bus)

	store := tokens.NewStore(
		tokens.WithNavigation(nav),
		tokens.WithDefaults(tokens.Tree{
			"page": tokens.Mapping(tokens.Tree{"title": tokens.String("Untitled")}),
		}),
	)
	defer store.Close()
	_ = store.Init(ctx)

	r := store.Replacer()
	_, _ = store.Set("page:title", "Products")
	fmt.Println(r.ReplaceString(ctx, "<title>[page:title]</title>"))

	_ = nav.Start(ctx, "/products", "/about")
	fmt.Println(r.ReplaceString(ctx, "<title>[page:title]</title>"))

	// Output:
	// <title>Products</title>
	// <title>Untitled</title>
}
