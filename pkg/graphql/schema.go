package graphql

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/saqib40/kit-and-adapter/internal/graph"
)

type GraphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName,omitempty"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
}

func NewHandler(resolver *graph.Resolver) (http.Handler, error) {
	schema, err := createSchema(resolver)
	if err != nil {
		return nil, err
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Error reading request body", http.StatusBadRequest)
			return
		}

		var req GraphQLRequest
		if err := json.Unmarshal(body, &req); err != nil {
			http.Error(w, "Error parsing request body", http.StatusBadRequest)
			return
		}

		result := executeQuery(r.Context(), schema, req)
		json.NewEncoder(w).Encode(result)
	}), nil
}

func executeQuery(ctx context.Context, schema graphql.Schema, req GraphQLRequest) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        ctx,
	})
}

func createSchema(resolver *graph.Resolver) (graphql.Schema, error) {
	walletType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Wallet",
		Fields: graphql.Fields{
			"address": &graphql.Field{
				Type: graphql.String,
			},
			"lamports": &graphql.Field{
				Type:        graphql.String,
				Description: "Balance in lamports.",
			},
			"balance": &graphql.Field{
				Type:        graphql.String,
				Description: "Balance in SOL with four decimal places.",
			},
		},
	})

	controlType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Control",
		Fields: graphql.Fields{
			"name":  &graphql.Field{Type: graphql.String},
			"label": &graphql.Field{Type: graphql.String},
		},
	})

	screenType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Screen",
		Fields: graphql.Fields{
			"title":     &graphql.Field{Type: graphql.String},
			"connected": &graphql.Field{Type: graphql.Boolean},
			"wallet":    &graphql.Field{Type: controlType},
			"heading":   &graphql.Field{Type: graphql.String},
			"address":   &graphql.Field{Type: graphql.String},
			"balance":   &graphql.Field{Type: graphql.String},
			"recipient": &graphql.Field{Type: graphql.String},
			"controls":  &graphql.Field{Type: graphql.NewList(controlType)},
			"prompt":    &graphql.Field{Type: graphql.String},
		},
	})

	notificationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Notification",
		Fields: graphql.Fields{
			"code":    &graphql.Field{Type: graphql.String},
			"level":   &graphql.Field{Type: graphql.String},
			"message": &graphql.Field{Type: graphql.String},
		},
	})

	actionResultType := graphql.NewObject(graphql.ObjectConfig{
		Name: "ActionResult",
		Fields: graphql.Fields{
			"kind":      &graphql.Field{Type: graphql.String},
			"signature": &graphql.Field{Type: graphql.String},
			"lamports":  &graphql.Field{Type: graphql.String},
			"to":        &graphql.Field{Type: graphql.String},
		},
	})

	actionPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "ActionPayload",
		Fields: graphql.Fields{
			"kind":         &graphql.Field{Type: graphql.String},
			"skipped":      &graphql.Field{Type: graphql.Boolean},
			"result":       &graphql.Field{Type: actionResultType},
			"notification": &graphql.Field{Type: notificationType},
			"wallet":       &graphql.Field{Type: walletType},
		},
	})

	activityType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Activity",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.Int},
			"kind":      &graphql.Field{Type: graphql.String},
			"from":      &graphql.Field{Type: graphql.String},
			"to":        &graphql.Field{Type: graphql.String},
			"lamports":  &graphql.Field{Type: graphql.String},
			"signature": &graphql.Field{Type: graphql.String},
			"status":    &graphql.Field{Type: graphql.String},
			"error":     &graphql.Field{Type: graphql.String},
			"createdAt": &graphql.Field{Type: graphql.DateTime},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"wallet": &graphql.Field{
				Type: walletType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return resolver.Wallet(p.Context), nil
				},
			},
			"screen": &graphql.Field{
				Type: screenType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return resolver.Screen(p.Context), nil
				},
			},
			"activity": &graphql.Field{
				Type: graphql.NewList(activityType),
				Args: graphql.FieldConfigArgument{
					"limit": &graphql.ArgumentConfig{
						Type: graphql.Int,
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					limit, _ := p.Args["limit"].(int)
					return resolver.Activity(p.Context, limit)
				},
			},
			"transaction": &graphql.Field{
				Type: activityType,
				Args: graphql.FieldConfigArgument{
					"signature": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.String),
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return resolver.Transaction(p.Context, p.Args["signature"].(string))
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"connect": &graphql.Field{
				Type: walletType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return resolver.Connect(p.Context)
				},
			},
			"disconnect": &graphql.Field{
				Type: graphql.Boolean,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return resolver.Disconnect(p.Context)
				},
			},
			"refreshBalance": &graphql.Field{
				Type: walletType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return resolver.RefreshBalance(p.Context)
				},
			},
			"setRecipient": &graphql.Field{
				Type: graphql.String,
				Args: graphql.FieldConfigArgument{
					"address": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.String),
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return resolver.SetRecipient(p.Args["address"].(string)), nil
				},
			},
			"airdrop": &graphql.Field{
				Type: actionPayloadType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return resolver.Airdrop(p.Context), nil
				},
			},
			"send": &graphql.Field{
				Type: actionPayloadType,
				Args: graphql.FieldConfigArgument{
					"recipient": &graphql.ArgumentConfig{
						Type: graphql.String,
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var recipient *string
					if v, ok := p.Args["recipient"].(string); ok {
						recipient = &v
					}
					return resolver.Send(p.Context, recipient), nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
