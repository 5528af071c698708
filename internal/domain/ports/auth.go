package ports

// TokenIssuer emite o token opaco entregue ao cliente no login.
// A implementação assina um JWT e o envelopa em cifra simétrica, de modo
// que o cliente nunca vê o token assinado cru.
type TokenIssuer interface {
	Issue(userID, role, email string) (string, error)
}

// PasswordHasher encapsula hashing e verificação de senhas
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenGenerator gera os tokens aleatórios de curta duração usados nos
// fluxos de verificação de email, reset de senha e OTP de cadastro
type TokenGenerator interface {
	HexToken(nBytes int) (string, error)
	NumericOTP(digits int) (string, error)
}
