package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"mudanzasBack/internal/models"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(""))
	customerMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleCustomer))
	companyMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleCompany))
	adminMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleAdmin))

	mux := pat.New()

	// Users
	mux.Post("/api/user/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/api/user/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Get("/api/user/me", authMiddleware.ThenFunc(app.userHandler.GetMe))
	mux.Put("/api/user", authMiddleware.ThenFunc(app.userHandler.UpdateUser))
	mux.Post("/api/user/password", authMiddleware.ThenFunc(app.userHandler.UpdatePassword))
	mux.Post("/api/user/avatar", authMiddleware.ThenFunc(app.userHandler.UploadAvatar))
	mux.Post("/api/user/device_token", authMiddleware.ThenFunc(app.userHandler.RegisterDeviceToken))
	mux.Post("/api/user/logout", authMiddleware.ThenFunc(app.userHandler.LogOut))
	mux.Get("/api/user/:id", adminMiddleware.ThenFunc(app.userHandler.GetUserByID))
	mux.Del("/api/user/:id", adminMiddleware.ThenFunc(app.userHandler.DeleteUser))

	// Requests
	mux.Post("/api/requests", customerMiddleware.ThenFunc(app.requestHandler.CreateRequest))
	mux.Get("/api/requests/feed", companyMiddleware.ThenFunc(app.requestHandler.GetFeed))
	mux.Get("/api/requests/:id/offers", authMiddleware.ThenFunc(app.offerHandler.ListOffers))
	mux.Post("/api/requests/:id/offers", companyMiddleware.ThenFunc(app.offerHandler.SubmitOffer))
	mux.Get("/api/requests/:id/unlock", companyMiddleware.ThenFunc(app.unlockHandler.CheckUnlock))
	mux.Get("/api/requests/:id", authMiddleware.ThenFunc(app.requestHandler.GetRequestByID))
	mux.Put("/api/requests/:id", authMiddleware.ThenFunc(app.requestHandler.UpdateRequest))
	mux.Del("/api/requests/:id", authMiddleware.ThenFunc(app.requestHandler.DeleteRequest))

	// Offers
	mux.Put("/api/offers/:id", companyMiddleware.ThenFunc(app.offerHandler.EditOffer))
	mux.Del("/api/offers/:id", companyMiddleware.ThenFunc(app.offerHandler.WithdrawOffer))
	mux.Post("/api/offers/:id/accept", customerMiddleware.ThenFunc(app.offerHandler.AcceptOffer))
	mux.Post("/api/offers/:id/decline", customerMiddleware.ThenFunc(app.offerHandler.DeclineOffer))

	// Company side
	mux.Get("/api/company/requests", companyMiddleware.ThenFunc(app.requestHandler.GetOpenRequests))
	mux.Get("/api/company/offers", companyMiddleware.ThenFunc(app.offerHandler.ListMyOffers))
	mux.Get("/api/company/unlocks", companyMiddleware.ThenFunc(app.unlockHandler.ListUnlocks))
	mux.Post("/api/unlocks", companyMiddleware.ThenFunc(app.unlockHandler.Unlock))

	// Company profile
	mux.Post("/api/company", companyMiddleware.ThenFunc(app.companyHandler.CreateCompany))
	mux.Get("/api/company/me", companyMiddleware.ThenFunc(app.companyHandler.GetMyCompany))
	mux.Post("/api/company/onboarding", companyMiddleware.ThenFunc(app.companyHandler.AdvanceOnboarding))
	mux.Post("/api/company/logo", companyMiddleware.ThenFunc(app.companyHandler.UploadLogo))
	mux.Post("/api/company/verification", companyMiddleware.ThenFunc(app.companyHandler.SubmitVerification))
	mux.Get("/api/companies/:id", authMiddleware.ThenFunc(app.companyHandler.GetCompanyByID))
	mux.Put("/api/companies/:id", companyMiddleware.ThenFunc(app.companyHandler.UpdateCompany))

	// Chats
	mux.Get("/api/chats", authMiddleware.ThenFunc(app.chatHandler.GetMyChats))
	mux.Get("/api/chats/:id/messages", authMiddleware.ThenFunc(app.messageHandler.GetMessages))
	mux.Post("/api/chats/:id/messages", authMiddleware.ThenFunc(app.messageHandler.SendMessage))
	mux.Get("/api/chats/:id/typing", authMiddleware.ThenFunc(app.chatHandler.GetTyping))
	mux.Post("/api/chats/:id/typing", authMiddleware.ThenFunc(app.chatHandler.SetTyping))
	mux.Del("/api/chats/:id/typing", authMiddleware.ThenFunc(app.chatHandler.ClearTyping))
	mux.Get("/api/chats/:id", authMiddleware.ThenFunc(app.chatHandler.GetChatByID))
	mux.Get("/api/messages/:id", authMiddleware.ThenFunc(app.messageHandler.GetMessages))

	// Admin
	mux.Post("/api/admin/requests/:id/approve", adminMiddleware.ThenFunc(app.adminHandler.ApproveRequest))
	mux.Post("/api/admin/fraud_flags", adminMiddleware.ThenFunc(app.adminHandler.CreateFraudFlag))
	mux.Get("/api/admin/fraud_flags", adminMiddleware.ThenFunc(app.adminHandler.GetFraudFlags))
	mux.Put("/api/admin/fraud_flags/:id", adminMiddleware.ThenFunc(app.adminHandler.TransitionFraudFlag))
	mux.Get("/api/admin/verifications", adminMiddleware.ThenFunc(app.adminHandler.GetVerifications))
	mux.Put("/api/admin/verifications/:id", adminMiddleware.ThenFunc(app.adminHandler.TransitionVerification))
	mux.Get("/api/admin/stats", adminMiddleware.ThenFunc(app.adminHandler.GetStats))
	mux.Post("/api/send-email", adminMiddleware.ThenFunc(app.emailHandler.SendEmail))

	// WebSocket
	mux.Get("/ws", http.HandlerFunc(app.WebSocketHandler))

	return mux
}
