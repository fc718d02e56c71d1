package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"crm/database"
	"crm/entities/companies"
	"crm/entities/deals"
	"crm/entities/leads"
	"crm/entities/pipelines"
	"crm/entities/products"
	"crm/entities/stages"
	"crm/entities/tasks"
	"crm/entities/users"
	"crm/funnel"
	"crm/middlewares"
	"crm/repository"
	"crm/utils"

	"go.uber.org/zap"
)

func initLogger(env string) *zap.Logger {
	if env == utils.ENV_RELEASE {
		logger, err := zap.NewProduction()
		if err != nil {
			panic("[LOG] Erro ao iniciar o logger: " + err.Error())
		}
		return logger
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("[LOG] Erro ao iniciar o logger: " + err.Error())
	}
	return logger
}

func main() {
	utils.LoadEnvVariables()

	env := os.Getenv(utils.ENV)
	if env == utils.ENV_RELEASE {
		fmt.Printf("\033[1;31;47m[ATENÇÃO] Rodando em ambiente de PRODUÇÃO!\033[0m\n")
	} else {
		fmt.Printf("[INFO] Ambiente atual: %s\n", env)
	}

	logger := initLogger(env)
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()
	if err := database.Init(ctx); err != nil {
		logger.Fatal("erro ao conectar no MongoDB", zap.Error(err))
	}
	defer database.Disconnect(context.Background())

	stores := repository.NewStores()
	service := funnel.NewService(stores, logger)

	pipelinesHandler := pipelines.NewHandler(service, logger)
	stagesHandler := stages.NewHandler(service, logger)
	dealsHandler := deals.NewHandler(service, logger)
	tasksHandler := tasks.NewHandler(service, logger)
	leadsHandler := leads.NewHandler(repository.NewLeads(), service, logger)
	productsHandler := products.NewHandler(repository.NewProducts(), logger)
	companiesHandler := companies.NewHandler(repository.NewCompanies(), logger)
	usersHandler := users.NewHandler(repository.NewUsers(), logger)

	mux := http.NewServeMux()

	mux.Handle("GET /v1/pipelines", middlewares.Auth(http.HandlerFunc(pipelinesHandler.GetAll)))
	mux.Handle("GET /v1/pipelines/{id}", middlewares.Auth(http.HandlerFunc(pipelinesHandler.GetOne)))
	mux.Handle("POST /v1/pipelines", middlewares.Auth(http.HandlerFunc(pipelinesHandler.CreateOne)))
	mux.Handle("PATCH /v1/pipelines/{id}", middlewares.Auth(http.HandlerFunc(pipelinesHandler.UpdateOne)))
	mux.Handle("DELETE /v1/pipelines/{id}", middlewares.Auth(http.HandlerFunc(pipelinesHandler.DeleteOne)))
	mux.Handle("GET /v1/pipelines/{id}/board", middlewares.Auth(http.HandlerFunc(pipelinesHandler.Board)))
	mux.Handle("GET /v1/pipelines/{id}/summary", middlewares.Auth(http.HandlerFunc(pipelinesHandler.Summary)))

	mux.Handle("GET /v1/pipelines/{id}/stages", middlewares.Auth(http.HandlerFunc(stagesHandler.GetAll)))
	mux.Handle("POST /v1/pipelines/{id}/stages", middlewares.Auth(http.HandlerFunc(stagesHandler.CreateOne)))
	mux.Handle("PATCH /v1/stages/{id}/position", middlewares.Auth(http.HandlerFunc(stagesHandler.MoveOne)))
	mux.Handle("DELETE /v1/stages/{id}", middlewares.Auth(http.HandlerFunc(stagesHandler.DeleteOne)))

	mux.Handle("GET /v1/deals", middlewares.Auth(http.HandlerFunc(dealsHandler.GetAll)))
	mux.Handle("GET /v1/deals/{id}", middlewares.Auth(http.HandlerFunc(dealsHandler.GetOne)))
	mux.Handle("POST /v1/deals", middlewares.Auth(http.HandlerFunc(dealsHandler.CreateOne)))
	mux.Handle("PATCH /v1/deals/{id}/stage", middlewares.Auth(http.HandlerFunc(dealsHandler.MoveStage)))
	mux.Handle("PATCH /v1/deals/{id}/won", middlewares.Auth(http.HandlerFunc(dealsHandler.MarkWon)))
	mux.Handle("PATCH /v1/deals/{id}/lost", middlewares.Auth(http.HandlerFunc(dealsHandler.MarkLost)))
	mux.Handle("POST /v1/deals/{id}/products", middlewares.Auth(http.HandlerFunc(dealsHandler.AttachProduct)))
	mux.Handle("DELETE /v1/deals/{id}/products/{itemId}", middlewares.Auth(http.HandlerFunc(dealsHandler.DetachProduct)))
	mux.Handle("POST /v1/deals/{id}/annotations", middlewares.Auth(http.HandlerFunc(dealsHandler.Annotate)))
	mux.Handle("GET /v1/deals/{id}/events", middlewares.Auth(http.HandlerFunc(dealsHandler.GetEvents)))
	mux.Handle("DELETE /v1/deals/{id}", middlewares.Auth(http.HandlerFunc(dealsHandler.DeleteOne)))
	mux.Handle("PATCH /v1/deals/{id}/restore", middlewares.Auth(http.HandlerFunc(dealsHandler.RestoreOne)))

	mux.Handle("GET /v1/deals/{id}/tasks", middlewares.Auth(http.HandlerFunc(tasksHandler.GetAll)))
	mux.Handle("POST /v1/deals/{id}/tasks", middlewares.Auth(http.HandlerFunc(tasksHandler.CreateOne)))
	mux.Handle("PATCH /v1/tasks/{id}/done", middlewares.Auth(http.HandlerFunc(tasksHandler.CompleteOne)))

	mux.Handle("GET /v1/leads", middlewares.Auth(http.HandlerFunc(leadsHandler.GetAll)))
	mux.Handle("GET /v1/leads/{id}", middlewares.Auth(http.HandlerFunc(leadsHandler.GetOne)))
	mux.Handle("POST /v1/leads", middlewares.Auth(http.HandlerFunc(leadsHandler.CreateOne)))
	mux.Handle("PATCH /v1/leads/{id}", middlewares.Auth(http.HandlerFunc(leadsHandler.UpdateOne)))
	mux.Handle("DELETE /v1/leads/{id}", middlewares.Auth(http.HandlerFunc(leadsHandler.DeleteOne)))

	mux.Handle("GET /v1/products", middlewares.Auth(http.HandlerFunc(productsHandler.GetAll)))
	mux.Handle("GET /v1/products/{id}", middlewares.Auth(http.HandlerFunc(productsHandler.GetOne)))
	mux.Handle("POST /v1/products", middlewares.Auth(http.HandlerFunc(productsHandler.CreateOne)))
	mux.Handle("PATCH /v1/products/{id}", middlewares.Auth(http.HandlerFunc(productsHandler.UpdateOne)))
	mux.Handle("DELETE /v1/products/{id}", middlewares.Auth(http.HandlerFunc(productsHandler.DeleteOne)))

	mux.Handle("GET /v1/companies", middlewares.Auth(http.HandlerFunc(companiesHandler.GetAll)))
	mux.Handle("GET /v1/companies/{id}", middlewares.Auth(http.HandlerFunc(companiesHandler.GetOne)))
	mux.Handle("POST /v1/companies", middlewares.Auth(http.HandlerFunc(companiesHandler.CreateOne)))

	mux.Handle("GET /v1/users", middlewares.Auth(http.HandlerFunc(usersHandler.GetAll)))
	mux.Handle("GET /v1/users/{id}", middlewares.Auth(http.HandlerFunc(usersHandler.GetOne)))

	fmt.Printf("Servidor iniciado na porta %s às %s\n", os.Getenv(utils.PORT), time.Now().Format("2006-01-02 15:04:05"))
	http.ListenAndServe(fmt.Sprintf(":%s", os.Getenv(utils.PORT)), middlewares.SecurityHeaders(middlewares.Cors(mux)))
}
