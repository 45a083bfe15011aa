package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"tam-survey/cmd/seed/internal/seedmodels"
	"tam-survey/internal/config"
	"tam-survey/internal/database"
	"tam-survey/internal/dto"
	"tam-survey/internal/logger"
	"tam-survey/internal/repository"
	"tam-survey/internal/service"

	"go.uber.org/zap"
)

const (
	seedFilePath = "config/seed/demo.json"
	tokenTTL     = 24 * time.Hour
)

type seeder struct {
	auth           service.AuthService
	profiles       service.ProfileService
	questionnaires service.QuestionnaireService
	responses      service.ResponseService
	log            *zap.Logger
}

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.LoggerConfig); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting demo data seeding process...")
	db, err := database.NewSQLXPostgresDB(cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	seed, err := loadSeedFile(seedFilePath)
	if err != nil {
		log.Fatal("Failed to load seed data", zap.Error(err))
	}
	log.Info("Loaded seed data", zap.Int("questionnaires", len(seed.Questionnaires)))

	authService, err := service.NewAuthService(cfg.Auth)
	if err != nil {
		log.Fatal("Failed to create AuthService", zap.Error(err))
	}
	questionnaireRepository := repository.NewQuestionnaireDatabaseAdapter(db)
	profileRepository := repository.NewProfileDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)
	// No results cache here; the API invalidates on its own writes only.
	noCache := service.NewResultsCacheService(nil, 0)

	s := &seeder{
		auth:           authService,
		profiles:       service.NewProfileService(profileRepository),
		questionnaires: service.NewQuestionnaireService(questionnaireRepository, profileRepository, txManager, noCache),
		responses: service.NewResponseService(questionnaireRepository, repository.NewResponseDatabaseAdapter(db),
			repository.NewAnswerDatabaseAdapter(db), txManager, noCache),
		log: log,
	}

	if err := s.seedUser(ctx, seed.Admin, service.RoleAdmin); err != nil {
		log.Fatal("Failed to seed admin", zap.Error(err))
	}
	for _, sq := range seed.Questionnaires {
		if err := s.seedQuestionnaire(ctx, seed.Admin.UserID, sq); err != nil {
			log.Error("Error seeding questionnaire", zap.String("app", sq.Request.AppName), zap.Error(err))
		}
	}
	log.Info("Demo data seeding process completed.")
}

// seedUser saves the profile and prints a development token for the user.
func (s *seeder) seedUser(ctx context.Context, u seedmodels.SeedUser, role string) error {
	if _, err := s.profiles.Upsert(ctx, u.UserID, &u.Profile); err != nil {
		return fmt.Errorf("profile of %s: %w", u.UserID, err)
	}
	token, err := s.auth.CreateJWT(u.UserID, role, tokenTTL)
	if err != nil {
		return fmt.Errorf("token for %s: %w", u.UserID, err)
	}
	s.log.Info("Seeded user", zap.String("userID", u.UserID), zap.String("role", role), zap.String("token", token))
	return nil
}

func (s *seeder) seedQuestionnaire(ctx context.Context, adminID string, sq seedmodels.SeedQuestionnaire) error {
	detail, err := s.questionnaires.Create(ctx, adminID, &sq.Request)
	if err != nil {
		return err
	}
	s.log.Info("Seeded questionnaire", zap.String("questionnaireID", detail.ID), zap.Int("questions", len(detail.Questions)))

	for _, r := range sq.Respondents {
		if err := s.seedUser(ctx, r.SeedUser, service.RoleRespondent); err != nil {
			return err
		}
		req := &dto.SaveResponseRequest{Answers: answersFor(detail.Questions, r.Values), Submit: r.Submit}
		if _, err := s.responses.Save(ctx, r.UserID, detail.ID, req); err != nil {
			return fmt.Errorf("response of %s: %w", r.UserID, err)
		}
	}
	return nil
}
