package middlewares

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"crm/utils"
)

type contextKey string

const UserContextKey = contextKey("auth_user")

// AuthUser é o usuário autenticado devolvido pela API externa de
// autenticação. A gestão de credenciais fica inteira do lado de lá.
type AuthUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token == "" {
			utils.SendResponse(w, http.StatusUnauthorized, "Token não informado", nil, 0)
			return
		}

		authURL := os.Getenv(utils.AUTH_API_URL)
		userURL := fmt.Sprintf("%s/api/user", authURL)

		req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, userURL, nil)
		if err != nil {
			utils.SendResponse(w, http.StatusInternalServerError, "Erro ao criar requisição de autenticação", nil, 0)
			return
		}
		req.Header.Set("Authorization", token)

		client := &http.Client{}
		resp, err := client.Do(req)
		if err != nil {
			utils.SendResponse(w, http.StatusBadGateway, "Erro ao conectar na API de autenticação", nil, 0)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			utils.SendResponse(w, http.StatusUnauthorized, "Token inválido ou usuário não autenticado", nil, 0)
			return
		}

		user := AuthUser{}
		err = json.NewDecoder(resp.Body).Decode(&user)
		if err != nil || user.ID == "" || user.Name == "" {
			utils.SendResponse(w, http.StatusUnauthorized, "Usuário inválido retornado pela autenticação", nil, 0)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFrom extrai o usuário autenticado do contexto da requisição.
func UserFrom(r *http.Request) (AuthUser, bool) {
	user, ok := r.Context().Value(UserContextKey).(AuthUser)
	return user, ok
}
