package graphql

import (
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/services"
	"github.com/graphql-go/graphql"
)

// taskStatusEnum maps the API enum names onto the values stored in the
// database, so clients never see the lowercase storage form.
var taskStatusEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "TaskStatus",
	Values: graphql.EnumValueConfigMap{
		"PENDING":     &graphql.EnumValueConfig{Value: models.TaskStatusPending},
		"IN_PROGRESS": &graphql.EnumValueConfig{Value: models.TaskStatusInProgress},
		"DONE":        &graphql.EnumValueConfig{Value: models.TaskStatusDone},
	},
})

// userType exposes the public user fields. The password digest is never
// part of the schema.
var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.User).ID, nil
			},
		},
		"name": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.User).Name, nil
			},
		},
		"email": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.User).Email, nil
			},
		},
	},
})

var taskType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Task",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Task).ID, nil
			},
		},
		"name": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Task).Name, nil
			},
		},
		"dueDate": &graphql.Field{
			Type: graphql.NewNonNull(graphql.DateTime),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Task).DueDate, nil
			},
		},
		"description": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				t := p.Source.(*models.Task)
				if t.Description == nil {
					return nil, nil
				}
				return *t.Description, nil
			},
		},
		"status": &graphql.Field{
			Type: graphql.NewNonNull(taskStatusEnum),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Task).Status, nil
			},
		},
		"userId": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Task).UserID, nil
			},
		},
		"createdAt": &graphql.Field{
			Type: graphql.NewNonNull(graphql.DateTime),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*models.Task).CreatedAt, nil
			},
		},
	},
})

var signInResultType = graphql.NewObject(graphql.ObjectConfig{
	Name: "SignInResult",
	Fields: graphql.Fields{
		"accessToken": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*services.SignInResult).AccessToken, nil
			},
		},
		"user": &graphql.Field{
			Type: graphql.NewNonNull(userType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*services.SignInResult).User, nil
			},
		},
	},
})
