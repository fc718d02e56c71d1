package utils

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
)

const (
	ENV          = "ENV"
	PORT         = "PORT"
	MONGODB_URI  = "MONGODB_URI"
	AUTH_API_URL = "AUTH_API_URL"

	ENV_DEVELOPMENT = "development"
	ENV_HOMOLOG     = "homolog"
	ENV_RELEASE     = "production"
)

var requiredKeys = []string{ENV, PORT, MONGODB_URI, AUTH_API_URL}

var allowedEnvValues = []string{ENV_DEVELOPMENT, ENV_HOMOLOG, ENV_RELEASE}

func LoadEnvVariables() {
	if err := godotenv.Load(); err != nil {
		panic("[ENV] Erro ao carregar o arquivo .env: " + err.Error())
	}

	var missingKeys []string
	for _, key := range requiredKeys {
		if os.Getenv(key) == "" {
			missingKeys = append(missingKeys, key)
		}
	}

	if len(missingKeys) > 0 {
		panic(fmt.Sprintf("[ENV] Variáveis de ambiente obrigatórias ausentes: %s",
			strings.Join(missingKeys, ", ")))
	}

	env := os.Getenv(ENV)
	if !slices.Contains(allowedEnvValues, env) {
		panic(fmt.Sprintf("[ENV] Valor inválido para ENV: %s. Valores permitidos: %s",
			env, strings.Join(allowedEnvValues, ", ")))
	}
}
