package main

import (
	"context"
	"fmt"
	"log"

	_ "github.com/yongxin12/Macrohard/docs"
	"github.com/yongxin12/Macrohard/internal/analyzer"
	"github.com/yongxin12/Macrohard/internal/config"
	"github.com/yongxin12/Macrohard/internal/domain"
	"github.com/yongxin12/Macrohard/internal/email/noop"
	"github.com/yongxin12/Macrohard/internal/email/ses"
	"github.com/yongxin12/Macrohard/internal/handler"
	"github.com/yongxin12/Macrohard/internal/llm"
	"github.com/yongxin12/Macrohard/internal/port"
	"github.com/yongxin12/Macrohard/internal/router"
	"github.com/yongxin12/Macrohard/internal/service"
	memorystorage "github.com/yongxin12/Macrohard/internal/storage/memory"
	s3storage "github.com/yongxin12/Macrohard/internal/storage/s3"
	firestorestore "github.com/yongxin12/Macrohard/internal/store/firestore"
	"github.com/yongxin12/Macrohard/internal/store/sample"
)

const version = "1.0.0"

// @title Job Coach Assistant API
// @version 1.0.0
// @description Document processing, AI assistance, and progress reports for supported employment job coaches.
// @BasePath /api/v1
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	ctx := context.Background()

	// Each external dependency degrades independently: demo mode or missing
	// credentials select the sample-backed implementation at wiring time, so
	// no service ever branches on mode.
	var (
		store        port.RecordStore
		directory    port.ClientDirectory
		clientSource domain.DataSource
	)
	if !cfg.DemoMode && cfg.Firestore.Configured() {
		fsClient, err := firestorestore.NewClient(ctx, &cfg.Firestore)
		if err != nil {
			return fmt.Errorf("failed to initialize Firestore client: %w", err)
		}
		defer fsClient.Close()
		store = firestorestore.NewStore(fsClient, &cfg.Firestore)
		directory = firestorestore.NewDirectory(fsClient, &cfg.Firestore)
		clientSource = domain.SourceLive
	} else {
		log.Printf("records: Firestore not configured or demo mode, using sample data")
		store = sample.NewStore()
		directory = sample.NewDirectory()
		clientSource = domain.SourceMock
	}

	var objStorage port.ObjectStorage
	if !cfg.DemoMode && cfg.S3.Bucket != "" {
		objStorage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	} else {
		log.Printf("storage: S3 not configured or demo mode, keeping files in memory")
		objStorage = memorystorage.NewStorage()
	}

	var extraction service.FieldExtraction
	if !cfg.DemoMode && cfg.Analyzer.Configured() {
		extraction = service.AnalyzerExtraction{Analyzer: analyzer.NewClient(&cfg.Analyzer)}
	} else {
		log.Printf("documents: analyzer not configured or demo mode, using mock extraction")
		extraction = service.MockExtraction{}
	}

	var (
		assistantSvc service.AssistantService
		reportSvc    service.ReportService
	)
	if !cfg.DemoMode && cfg.OpenAI.Configured() {
		completer := llm.NewRetryingCompleter(llm.NewClient(&cfg.OpenAI), llm.DefaultRetryPolicy())
		assistantSvc = service.NewAssistantService(completer)
		reportSvc = service.NewReportService(directory, completer)
	} else {
		log.Printf("assistant: chat completion not configured or demo mode, using canned responses")
		assistantSvc = service.NewDemoAssistantService()
		reportSvc = service.NewDemoReportService()
	}

	var emailSender port.EmailSender
	if cfg.Email.Provider == "ses" {
		emailSender, err = ses.NewSESSender(&cfg.Email)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	} else {
		emailSender = noop.NewNoopSender()
	}

	authSvc := service.NewAuthService(cfg.JWT)
	clientSvc := service.NewClientService(directory, clientSource)
	documentSvc := service.NewDocumentService(extraction, store, objStorage)

	mode := "live"
	if cfg.DemoMode {
		mode = "demo"
	}

	authH := handler.NewAuthHandler(authSvc)
	documentH := handler.NewDocumentHandler(documentSvc)
	assistantH := handler.NewAssistantHandler(assistantSvc)
	reportH := handler.NewReportHandler(reportSvc, emailSender)
	clientH := handler.NewClientHandler(clientSvc)
	healthH := handler.NewHealthHandler(version, mode)

	r := router.Setup(authSvc, authH, documentH, assistantH, reportH, clientH, healthH, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s (mode: %s)", cfg.Server.Port, mode)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
