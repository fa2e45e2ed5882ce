package main

import (
	"context"
	"fmt"

	"feedbackportal/internal/api"
	"feedbackportal/internal/assist"
	"feedbackportal/internal/config"
	"feedbackportal/internal/session"
	"feedbackportal/internal/storage"
	"feedbackportal/internal/store"
	"feedbackportal/internal/transport"
)

// app wires config, session storage, transport, services, and stores.
type app struct {
	cfg        *config.Config
	storage    storage.Storage
	session    *session.Provider
	posts      *store.PostStore
	complaints *store.ComplaintStore
	assist     *assist.Orchestrator
	closer     func() error
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	st, closer, err := openStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	sess, err := session.NewProvider(ctx, st)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	client := transport.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, sess)

	postAPI := api.NewPostAPI(client)
	complaintAPI := api.NewComplaintAPI(client)
	assistAPI := api.NewAssistAPI(client)

	user, _ := sess.CurrentUser()
	posts := store.NewPostStore(postAPI, sess)
	complaints := store.NewComplaintStore(complaintAPI, user.IsAdmin(), cfg.PageSize)

	return &app{
		cfg:        cfg,
		storage:    st,
		session:    sess,
		posts:      posts,
		complaints: complaints,
		assist:     assist.NewOrchestrator(assistAPI, posts, complaints),
		closer:     closer,
	}, nil
}

func openStorage(ctx context.Context, cfg *config.Config) (storage.Storage, func() error, error) {
	if cfg.DatabaseURL != "" {
		pg, err := storage.NewPostgresStorage(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open session store: %w", err)
		}
		return pg, pg.Close, nil
	}
	js, err := storage.NewJSONStorage(cfg.SessionFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open session store: %w", err)
	}
	return js, nil, nil
}

func (a *app) Close() error {
	if a.closer != nil {
		return a.closer()
	}
	return nil
}
