package services

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/eventra/eventra-backend/internal/domain/entities"
	"github.com/eventra/eventra-backend/internal/domain/errors"
	"github.com/eventra/eventra-backend/internal/domain/ports"
	"github.com/eventra/eventra-backend/internal/domain/repositories"
	"github.com/eventra/eventra-backend/internal/domain/valueobjects"
)

var _ = Describe("UserService", func() {
	var (
		ctx     context.Context
		users   *memUserRepo
		queue   *fakeEmailQueue
		service *UserService
		clock   time.Time
	)

	registerInput := RegisterInput{
		Name:     "Maria Silva",
		Email:    "maria@example.com",
		Phone:    "11987654321",
		Address:  "Rua das Flores, 10",
		Password: "S3nhaForte!",
	}

	BeforeEach(func() {
		ctx = context.Background()
		users = newMemUserRepo()
		queue = &fakeEmailQueue{}
		clock = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

		service = NewUserService(
			users, newMemManagerRepo(), fakeHasher{}, fakeIssuer{},
			&fakeGenerator{}, queue, nopLogger{}, "https://app.example.com",
		)
		service.now = func() time.Time { return clock }
	})

	Describe("Register", func() {
		It("cria a conta com role user e token de verificação", func() {
			user, err := service.Register(ctx, registerInput)
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Role).To(Equal(entities.RoleUser))
			Expect(user.IsVerified).To(BeFalse())
			Expect(user.VerifyToken).To(Equal("token-1"))
			Expect(user.PasswordHash).To(Equal("hashed:S3nhaForte!"))
		})

		It("enfileira o email de verificação com o link do token", func() {
			_, err := service.Register(ctx, registerInput)
			Expect(err).NotTo(HaveOccurred())

			Expect(queue.sent).To(HaveLen(1))
			Expect(queue.sent[0].Template).To(Equal(ports.EmailTemplateVerification))
			Expect(queue.sent[0].To).To(Equal("maria@example.com"))
			Expect(queue.sent[0].Data["Link"]).To(Equal("https://app.example.com/verify-email/token-1"))
		})

		It("rejeita email duplicado entre contas vivas", func() {
			_, err := service.Register(ctx, registerInput)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Register(ctx, registerInput)
			Expect(err).To(MatchError(errors.ErrEmailAlreadyExists))
		})

		It("rejeita email malformado como erro de formato, não de credencial", func() {
			bad := registerInput
			bad.Email = "not-an-email"

			_, err := service.Register(ctx, bad)
			Expect(err).To(MatchError(valueobjects.ErrInvalidEmail))
			Expect(users.users).To(BeEmpty())
		})

		It("permite reusar o email de uma conta deletada", func() {
			user, err := service.Register(ctx, registerInput)
			Expect(err).NotTo(HaveOccurred())

			Expect(users.Delete(ctx, user.ID)).To(Succeed())

			_, err = service.Register(ctx, registerInput)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("Login", func() {
		BeforeEach(func() {
			_, err := service.Register(ctx, registerInput)
			Expect(err).NotTo(HaveOccurred())
		})

		It("emite o token de sessão com credenciais corretas", func() {
			token, user, err := service.Login(ctx, LoginInput{
				Email:    "maria@example.com",
				Password: "S3nhaForte!",
				Role:     "user",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(token).To(HavePrefix("session:"))
			Expect(user.Email.String()).To(Equal("maria@example.com"))
		})

		It("responde not found para email desconhecido", func() {
			_, _, err := service.Login(ctx, LoginInput{
				Email:    "ninguem@example.com",
				Password: "S3nhaForte!",
				Role:     "user",
			})
			Expect(err).To(MatchError(errors.ErrUserNotFound))
		})

		It("rejeita senha errada", func() {
			_, _, err := service.Login(ctx, LoginInput{
				Email:    "maria@example.com",
				Password: "errada",
				Role:     "user",
			})
			Expect(err).To(MatchError(errors.ErrInvalidCredentials))
		})

		It("rejeita login com role divergente", func() {
			_, _, err := service.Login(ctx, LoginInput{
				Email:    "maria@example.com",
				Password: "S3nhaForte!",
				Role:     "admin",
			})
			Expect(err).To(MatchError(errors.ErrRoleMismatch))
		})
	})

	Describe("VerifyEmail", func() {
		var token string

		BeforeEach(func() {
			user, err := service.Register(ctx, registerInput)
			Expect(err).NotTo(HaveOccurred())
			token = user.VerifyToken
		})

		It("marca a conta como verificada dentro da janela", func() {
			clock = clock.Add(entities.VerificationTokenTTL - time.Second)

			Expect(service.VerifyEmail(ctx, token)).To(Succeed())

			user, err := users.FindByEmail(ctx, "maria@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.IsVerified).To(BeTrue())
			Expect(user.VerifyToken).To(BeEmpty())
		})

		It("rejeita token desconhecido", func() {
			err := service.VerifyEmail(ctx, "nunca-existiu")
			Expect(err).To(MatchError(errors.ErrInvalidToken))
		})

		It("distingue expirado de inválido e limpa o token", func() {
			clock = clock.Add(entities.VerificationTokenTTL + time.Second)

			err := service.VerifyEmail(ctx, token)
			Expect(err).To(MatchError(errors.ErrTokenExpired))

			// O token foi limpo: a segunda tentativa falha como inválido
			err = service.VerifyEmail(ctx, token)
			Expect(err).To(MatchError(errors.ErrInvalidToken))
		})
	})

	Describe("ForgotPassword e ResetPassword", func() {
		BeforeEach(func() {
			_, err := service.Register(ctx, registerInput)
			Expect(err).NotTo(HaveOccurred())
		})

		It("não revela se o email existe", func() {
			Expect(service.ForgotPassword(ctx, "ninguem@example.com")).To(Succeed())
			Expect(queue.sent).To(HaveLen(1)) // apenas o email de verificação do cadastro
		})

		It("gera token de uso único e o consome na redefinição", func() {
			Expect(service.ForgotPassword(ctx, "maria@example.com")).To(Succeed())

			user, err := users.FindByEmail(ctx, "maria@example.com")
			Expect(err).NotTo(HaveOccurred())
			token := user.ResetToken
			Expect(token).NotTo(BeEmpty())

			clock = clock.Add(10 * time.Minute)
			Expect(service.ResetPassword(ctx, token, "NovaSenha1", "NovaSenha1")).To(Succeed())
			Expect(user.PasswordHash).To(Equal("hashed:NovaSenha1"))

			// Token consumido: reuso falha
			err = service.ResetPassword(ctx, token, "Outra1", "Outra1")
			Expect(err).To(MatchError(errors.ErrInvalidToken))
		})

		It("valida a confirmação antes de tocar o armazenamento", func() {
			err := service.ResetPassword(ctx, "qualquer", "a1B", "b2C")
			Expect(err).To(MatchError(errors.ErrPasswordMismatch))
		})

		It("rejeita token de reset expirado", func() {
			Expect(service.ForgotPassword(ctx, "maria@example.com")).To(Succeed())

			user, err := users.FindByEmail(ctx, "maria@example.com")
			Expect(err).NotTo(HaveOccurred())
			token := user.ResetToken

			clock = clock.Add(entities.PasswordResetTokenTTL + time.Second)
			err = service.ResetPassword(ctx, token, "NovaSenha1", "NovaSenha1")
			Expect(err).To(MatchError(errors.ErrTokenExpired))
		})
	})

	Describe("DeleteUser", func() {
		It("faz soft delete e some das listagens", func() {
			user, err := service.Register(ctx, registerInput)
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteUser(ctx, user.ID)).To(Succeed())

			list, err := service.ListUsers(ctx, repositories.UserFilters{})
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(BeEmpty())
		})

		It("responde not found para conta inexistente", func() {
			err := service.DeleteUser(ctx, "fantasma")
			Expect(err).To(MatchError(errors.ErrUserNotFound))
		})
	})
})
