package tokens_test

import (
	"context"
	"fmt"

	"github.com/randalmurphal/tokens/pkg/tokens"
	"github.com/randalmurphal/tokens/pkg/tokens/event"
)

func Example() {
	ctx := context.Background()

	store := tokens.NewStore(tokens.WithDefaults(tokens.Tree{
		"site": tokens.Mapping(tokens.Tree{"name": tokens.String("Acme")}),
	}))
	_ = store.Init(ctx)
	_, _ = store.Set("page:title", "About")

	r := store.Replacer()
	fmt.Println(r.ReplaceString(ctx, "[page:title] | [site:name]"))
	// Output: About | Acme
}

func ExampleReplacer_Generate() {
	r := tokens.NewReplacer()
	repl := r.Generate(tokens.Tree{
		"a": tokens.Mapping(tokens.Tree{"b": tokens.String("X")}),
	})

	for _, ph := range repl.Placeholders() {
		fmt.Printf("%s -> %s\n", ph, repl[ph])
	}
	// Output: [a:b] -> X
}

func ExampleReplacer_ReplaceAny() {
	store := tokens.NewStore(tokens.WithDefaults(tokens.Tree{
		"site": tokens.Mapping(tokens.Tree{"name": tokens.String("Acme")}),
	}))
	_ = store.Init(context.Background())

	page := map[string]any{
		"title": "Welcome to [site:name]",
		"links": []any{"[site:name] home"},
	}
	store.Replacer().ReplaceAny(context.Background(), page)

	fmt.Println(page["title"])
	fmt.Println(page["links"])
	// Output:
	// Welcome to Acme
	// [Acme home]
}

func ExampleStore_Clear() {
	store := tokens.NewStore()
	_ = store.Init(context.Background())
	_, _ = store.Set("site:slogan", "Tools for makers")
	_, _ = store.Clear("site:slogan")

	v, _ := store.Get("site:slogan", tokens.String("(none)"))
	fmt.Println(v)
	fmt.Printf("%q\n", store.Replacer().ReplaceString(context.Background(), "[site:slogan]"))
	// Output:
	// (none)
	// ""
}

func ExampleWithNavigation() {
	bus := event.NewBus(event.DefaultBusConfig)
	defer bus.Close()
	nav := event.NewNavigator(bus)

	store := tokens.NewStore(tokens.WithNavigation(nav))
	defer store.Close()
	_ = store.Init(context.Background())

	_, _ = store.Set("page:title", "About")
	_ = nav.Start(context.Background(), "/about", "/")

	v, _ := store.Get("page:title", tokens.String("reset"))
	fmt.Println(v)
	// Output: reset
}
