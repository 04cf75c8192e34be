// Package graphql builds the API schema and translates between the wire
// shapes and the service layer.
package graphql

import (
	"context"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/guard"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/taskkeeper/internal/server/services"
	"github.com/graphql-go/graphql"
)

// TokenIssuer is the slice of the authentication service used by signIn.
type TokenIssuer interface {
	SignIn(user *models.User) (*services.SignInResult, error)
}

// UserProvider is the slice of the user service used by the resolvers.
type UserProvider interface {
	CreateUser(ctx context.Context, name string, email string, password string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// TaskProvider is the slice of the task service used by the resolvers.
type TaskProvider interface {
	CreateTask(ctx context.Context, name string, dueDate time.Time, description *string, ownerID int64) (*models.Task, error)
	ListTasks(ctx context.Context, ownerID int64) ([]*models.Task, error)
	UpdateTask(ctx context.Context, id int64, params tasks.UpdateParams) (*models.Task, error)
	DeleteTask(ctx context.Context, id int64) (*models.Task, error)
}

// Resolver holds the services and guards the schema resolvers close over.
type Resolver struct {
	logger     logging.Logger
	auth       TokenIssuer
	users      UserProvider
	tasks      TaskProvider
	credGuard  *guard.CredentialGuard
	tokenGuard *guard.TokenGuard
}

func NewResolver(logger logging.Logger, auth TokenIssuer, users UserProvider, taskSvc TaskProvider,
	credGuard *guard.CredentialGuard, tokenGuard *guard.TokenGuard) *Resolver {
	return &Resolver{
		logger:     logger,
		auth:       auth,
		users:      users,
		tasks:      taskSvc,
		credGuard:  credGuard,
		tokenGuard: tokenGuard,
	}
}

// resolve finishes a resolver chain: unexpected failures are logged with
// their full cause, then every error is collapsed into the API taxonomy so
// internals never reach the client.
func (r *Resolver) resolve(fn graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		out, err := fn(p)
		if err != nil {
			apiErr := mapError(err)
			if apiErr.Code() == CodeOperationFailed {
				r.logger.Error(p.Context, "operation failed", "field", p.Info.FieldName, "error", err.Error())
			}
			return nil, apiErr
		}
		return out, nil
	}
}

func (r *Resolver) signIn(p graphql.ResolveParams) (interface{}, error) {
	user, ok := guard.CurrentUser(p.Context)
	if !ok {
		return nil, common.ErrInvalidCredentials
	}
	return r.auth.SignIn(user)
}

func (r *Resolver) createUser(p graphql.ResolveParams) (interface{}, error) {
	name, _ := p.Args["name"].(string)
	email, _ := p.Args["email"].(string)
	password, _ := p.Args["password"].(string)
	return r.users.CreateUser(p.Context, name, email, password)
}

func (r *Resolver) getUser(p graphql.ResolveParams) (interface{}, error) {
	email, _ := p.Args["email"].(string)
	user, err := r.users.GetUserByEmail(p.Context, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return user, nil
}

func (r *Resolver) getTasks(p graphql.ResolveParams) (interface{}, error) {
	userID, _ := p.Args["userId"].(int)
	return r.tasks.ListTasks(p.Context, int64(userID))
}

func (r *Resolver) createTask(p graphql.ResolveParams) (interface{}, error) {
	name, _ := p.Args["name"].(string)
	dueDate, _ := p.Args["dueDate"].(time.Time)
	userID, _ := p.Args["userId"].(int)

	var description *string
	if v, ok := p.Args["description"].(string); ok {
		description = &v
	}

	return r.tasks.CreateTask(p.Context, name, dueDate, description, int64(userID))
}

func (r *Resolver) updateTask(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(int)

	var params tasks.UpdateParams
	if v, ok := p.Args["name"].(string); ok {
		params.Name = &v
	}
	if v, ok := p.Args["dueDate"].(time.Time); ok {
		params.DueDate = &v
	}
	if v, ok := p.Args["description"].(string); ok {
		params.Description = &v
	}
	if v, ok := p.Args["status"].(string); ok {
		params.Status = &v
	}

	return r.tasks.UpdateTask(p.Context, int64(id), params)
}

func (r *Resolver) deleteTask(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(int)
	return r.tasks.DeleteTask(p.Context, int64(id))
}

// NewSchema assembles the executable schema. Guard wiring is explicit:
// signIn runs behind the credential guard, every task operation behind the
// token guard, and user registration/lookup stay public.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"getUser": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"email": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolve(r.getUser),
			},
			"getTasks": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(taskType))),
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.resolve(r.tokenGuard.Protect(r.getTasks)),
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"signIn": &graphql.Field{
				Type: graphql.NewNonNull(signInResultType),
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolve(r.credGuard.Protect(r.signIn)),
			},
			"createUser": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"name":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolve(r.createUser),
			},
			"createTask": &graphql.Field{
				Type: graphql.NewNonNull(taskType),
				Args: graphql.FieldConfigArgument{
					"name":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"dueDate":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.DateTime)},
					"description": &graphql.ArgumentConfig{Type: graphql.String},
					"userId":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.resolve(r.tokenGuard.Protect(r.createTask)),
			},
			"updateTask": &graphql.Field{
				Type: graphql.NewNonNull(taskType),
				Args: graphql.FieldConfigArgument{
					"id":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"name":        &graphql.ArgumentConfig{Type: graphql.String},
					"dueDate":     &graphql.ArgumentConfig{Type: graphql.DateTime},
					"description": &graphql.ArgumentConfig{Type: graphql.String},
					"status":      &graphql.ArgumentConfig{Type: taskStatusEnum},
				},
				Resolve: r.resolve(r.tokenGuard.Protect(r.updateTask)),
			},
			"deleteTask": &graphql.Field{
				Type: graphql.NewNonNull(taskType),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.resolve(r.tokenGuard.Protect(r.deleteTask)),
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query, Mutation: mutation})
}
