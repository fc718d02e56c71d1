package database

import (
	"context"
	"os"
	"time"

	"crm/utils"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	MONGO_TIMEOUT          = 20 * time.Second
	COLLECTION_COMPANIES   = "companies"
	COLLECTION_USERS       = "users"
	COLLECTION_LEADS       = "leads"
	COLLECTION_PRODUCTS    = "products"
	COLLECTION_PIPELINES   = "pipelines"
	COLLECTION_STAGES      = "stages"
	COLLECTION_DEALS       = "deals"
	COLLECTION_DEAL_EVENTS = "deal_events"
	COLLECTION_TASKS       = "tasks"
)

var client *mongo.Client

// Init conecta o cliente compartilhado. Deve ser chamado uma única vez na
// subida do processo, antes de qualquer acesso a Collection.
func Init(ctx context.Context) error {
	mongoURI := os.Getenv(utils.MONGODB_URI)
	opts := options.Client().ApplyURI(mongoURI)

	c, err := mongo.Connect(opts)
	if err != nil {
		return err
	}

	pingCtx, cancel := context.WithTimeout(ctx, MONGO_TIMEOUT)
	defer cancel()
	if err := c.Ping(pingCtx, nil); err != nil {
		return err
	}

	client = c
	return nil
}

func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

func Client() *mongo.Client {
	return client
}

func Collection(name string) *mongo.Collection {
	return client.Database(GetDB()).Collection(name)
}

func GetDB() string {
	environment := os.Getenv(utils.ENV)

	if environment == utils.ENV_RELEASE {
		return "production"
	}

	if environment == utils.ENV_HOMOLOG {
		return "homolog"
	}

	if environment == utils.ENV_DEVELOPMENT {
		return "development"
	}

	panic("[MongoDB] Invalid DB name")
}
