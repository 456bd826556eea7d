package graphqlserver

import (
	"context"
	"encoding/json"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"storefront.GO/catalog"
	"storefront.GO/graphql"
	"storefront.GO/graphql/registry"
	"storefront.GO/graphql/resolvers"
)

// RootResolver resolves the Query type. Catalog fields come from the embedded
// resolvers.Query; _extension dispatches to graphql/registry.
type RootResolver struct {
	*resolvers.Query
}

// ExtensionArgs for _extension(name, args).
type ExtensionArgs struct {
	Name string
	Args *string
}

func (r *RootResolver) Extension(ctx context.Context, args ExtensionArgs) (*string, error) {
	var m map[string]interface{}
	if args.Args != nil && *args.Args != "" {
		_ = json.Unmarshal([]byte(*args.Args), &m)
	}
	if m == nil {
		m = make(map[string]interface{})
	}
	out, err := registry.Resolve(ctx, args.Name, m)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// NewSchema parses the schema (base plus registered extensions) against the catalog.
func NewSchema(cat *catalog.Catalog, pageSize int) (*gql.Schema, error) {
	root := &RootResolver{Query: &resolvers.Query{Catalog: cat, PageSize: pageSize}}
	return gql.ParseSchema(graphql.Schema(), root)
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
