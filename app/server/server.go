package server

import (
	"context"
	"log/slog"

	"mariachat/app/config"
	"mariachat/app/service/conversation"
	"mariachat/app/service/generate"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/do"
)

var _ do.Shutdownable = (*Server)(nil)

type Server struct {
	cfg             *config.Config
	conversationSvc *conversation.Service
	app             *fiber.App
}

func New(di *do.Injector) (*Server, error) {
	s := &Server{
		cfg:             do.MustInvoke[*config.Config](di),
		conversationSvc: do.MustInvoke[*conversation.Service](di),
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Post("/api/chat", s.handleChat)

	s.app = app

	return s, nil
}

// handleChat never returns an error status: every internal failure degrades
// to a templated answer so the widget always has something to show.
func (s *Server) handleChat(c *fiber.Ctx) error {
	var req conversation.ChatRequest

	if err := c.BodyParser(&req); err != nil {
		slog.Warn("Unparseable chat request", "error", err)

		return c.JSON(conversation.ChatResponse{
			Answer: generate.MissingCredentialFallback,
		})
	}

	resp := s.conversationSvc.HandleTurn(c.UserContext(), req)

	return c.JSON(resp)
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = s.app.Shutdown()
	}()

	slog.Info("Listening", "addr", s.cfg.Server.Addr)

	return s.app.Listen(s.cfg.Server.Addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
