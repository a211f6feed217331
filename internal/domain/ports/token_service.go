package ports

// TokenService emite e verifica credenciais assinadas de sessão.
// Verify retorna o user_id embutido (claim sub) quando o token é válido.
type TokenService interface {
	Issue(userID, email string) (string, error)
	Verify(token string) (string, error)
}
