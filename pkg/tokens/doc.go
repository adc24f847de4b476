/*
Package tokens keeps a nested tree of token values and replaces bracketed
placeholders such as [site:name] in strings and nested data with them.

# Overview

A Store holds the current tree, addressed by paths joined with a delimiter
(":" by default). A Replacer flattens a tree into placeholder/value pairs and
substitutes every occurrence of each placeholder in its input. Substitution is
literal: there are no conditionals, loops, or escapes.

# Basic Usage

	store := tokens.NewStore(tokens.WithDefaults(tokens.Tree{
	    "site": tokens.Mapping(tokens.Tree{"name": tokens.String("Acme")}),
	}))
	_ = store.Init(ctx)

	_, _ = store.Set("page:title", "About")

	r := store.Replacer()
	r.ReplaceString(ctx, "[page:title] | [site:name]")
	// "About | Acme"

# Values

Value is a closed variant: undefined, scalar, sequence, or mapping. Mappings
are descended when flattening; everything else becomes one placeholder.
Sequences are leaves, so there are no index placeholders such as [tags:0].

An undefined token still yields a placeholder and is replaced with the empty
string. Clear sets a token to undefined rather than deleting it:

	_, _ = store.Clear("page:title")
	r.ReplaceString(ctx, "[page:title]|") // "|"

# Nested Input

Mappings and sequences passed to Replace are rewritten member by member in
place and returned; the caller's data is mutated. Copy first (Value.Clone)
when the original must be kept. Undefined inputs and undefined members are
left as they are. ReplaceAny does the same for native data: map[string]any,
[]any, map[string]string and []string.

# Resetting

Reset restores the configured defaults. A store built with WithNavigation
resets on every navigation start signal, e.g. from event.Navigator. Init
resets only on its first call.

# Formatting

Replacement values are rendered with a FormatFunc, DefaultFormat unless
WithFormat is given. LocalizedFormat renders numbers for a locale.

# Known Limitations

Path segments must not contain the delimiter; there is no escaping, and a
segment that does is silently addressed as two segments.
*/
package tokens
