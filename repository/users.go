package repository

import (
	"context"
	"errors"
	"fmt"

	"crm/database"
	"crm/funnel"
	"crm/schemas"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Users é somente leitura: o cadastro em si é mantido pelo serviço externo
// de autenticação.
type Users struct {
	coll *mongo.Collection
}

func NewUsers() *Users {
	return &Users{coll: database.Collection(database.COLLECTION_USERS)}
}

func (u *Users) Get(ctx context.Context, id bson.ObjectID) (*schemas.User, error) {
	user := &schemas.User{}
	err := u.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("usuário: %w", funnel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar usuário: %w", err)
	}
	return user, nil
}

func (u *Users) List(ctx context.Context, companyID bson.ObjectID) ([]schemas.User, error) {
	filter := bson.D{}
	if !companyID.IsZero() {
		filter = append(filter, bson.E{Key: "company_id", Value: companyID})
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := u.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar usuários: %w", err)
	}
	defer cursor.Close(ctx)

	users := []schemas.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("falha ao decodificar usuários: %w", err)
	}
	return users, nil
}
