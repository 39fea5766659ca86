package main

import (
	"MS_Service_Health_Monitor/internal/analysis"
	"MS_Service_Health_Monitor/internal/chart"
	"MS_Service_Health_Monitor/internal/config"
	"MS_Service_Health_Monitor/internal/poller"
	"MS_Service_Health_Monitor/internal/report"
	"MS_Service_Health_Monitor/internal/repository"
	"MS_Service_Health_Monitor/internal/severity"
	"MS_Service_Health_Monitor/pkg/infra"
	"MS_Service_Health_Monitor/pkg/logger"
	"MS_Service_Health_Monitor/pkg/mail"
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	modeScan   = "scan"
	modeReport = "report"
	modeDaemon = "daemon"
)

func main() {
	var mode, customer string
	flag.StringVar(&mode, "mode", "", "task to perform: scan | report | daemon")
	flag.StringVar(&mode, "m", "", "shorthand for -mode")
	flag.StringVar(&customer, "customer", "", "customer name or 'all'")
	flag.StringVar(&customer, "c", "", "shorthand for -customer")
	flag.Parse()

	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	if err = os.MkdirAll(appConfig.Dirs.Logs, 0o755); err != nil {
		log.Fatal(fmt.Sprintf("create log directory error: %v", err))
	}
	fileSyncer, err := logger.NewReopenableWriteSyncer(filepath.Join(appConfig.Dirs.Logs, "monitor.log"))
	if err != nil {
		log.Fatal(fmt.Sprintf("create log file error: %v", err))
	}
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, fileSyncer).With(
		zap.String("service.name", "service-health-monitor"),
		zap.String("run_id", uuid.NewString()))
	defer zapLogger.Sync()
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP)
	go func() {
		for {
			<-c
			zapLogger.Info("receive logrotate SIGHUP, reloading log file")
			if e := fileSyncer.Reload(); e != nil {
				zapLogger.Error("failed to reload log file", zap.Error(e))
			} else {
				zapLogger.Info("successfully reloaded log file")
			}
		}
	}()

	customers, err := config.LoadCustomers(appConfig.Server.CustomersFile)
	if err != nil {
		zapLogger.Fatal("failed to load customers configuration", zap.Error(err))
	}

	// set up database
	db, err := infra.NewSQLiteConnection(infra.SQLiteConfig{
		Dir:  appConfig.Dirs.Database,
		File: "ServiceDB.db",
	})
	if err != nil {
		zapLogger.Fatal("failed to open local database", zap.Error(err))
	}
	if err = repository.Migrate(db); err != nil {
		zapLogger.Fatal("failed to migrate local database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to get sql.DB from gorm", zap.Error(err))
	}
	defer sqlDB.Close()

	statusRepository := repository.NewStatusRepository(db)
	healthPoller := poller.NewPoller(
		customers,
		poller.NewEnvCredentialResolver(),
		poller.NewAuthenticator(appConfig.API.AuthEndpoint, appConfig.API.Scope, appConfig.API.RequestTimeout),
		poller.NewHealthClient(appConfig.API.HealthEndpoint, appConfig.API.RequestTimeout),
		statusRepository,
		appConfig.Retention.RetentionDays,
		zapLogger,
	)

	severityMap := severity.Default()
	mailSender := mail.NewMailSender(appConfig.SMTP.From, appConfig.SMTP.Password, appConfig.SMTP.Host, appConfig.SMTP.Port)
	reportService := report.NewService(
		customers,
		statusRepository,
		analysis.NewAggregator(severityMap),
		chart.NewRenderer(severityMap, appConfig.Dirs.Images, 1000, 400),
		report.NewMailDispatcher(mailSender, appConfig.SMTP.Subject, appConfig.SMTP.Signature, zapLogger),
		appConfig.Retention,
		zapLogger,
	)

	if mode == "" {
		mode = promptMode(zapLogger)
	}

	ctx := context.Background()
	switch mode {
	case modeScan:
		healthPoller.Scan(ctx)
	case modeReport:
		if customer == "" {
			customer = promptCustomer(customers, zapLogger)
		}
		if customer != report.CustomerAll {
			if _, ok := config.FindCustomer(customers, customer); !ok {
				zapLogger.Fatal("customer not recognized in configuration", zap.String("customer", customer))
			}
		}
		if err = reportService.Run(ctx, customer); err != nil {
			zapLogger.Fatal("report run failed", zap.Error(err))
		}
	case modeDaemon:
		runDaemon(appConfig.Schedule, healthPoller, reportService, zapLogger)
	default:
		zapLogger.Fatal("mode not recognized", zap.String("mode", mode))
	}
}

// promptMode asks for the task when no -mode flag was provided.
func promptMode(zapLogger *zap.Logger) string {
	zapLogger.Info("select task to perform")
	zapLogger.Info("scan - connect with customer API to obtain service health info")
	zapLogger.Info("report - prepare a summary service health report email")
	zapLogger.Info("daemon - run scan and report on the configured schedules")
	fmt.Print("Chosen task [scan / report / daemon]: ")
	return readLine()
}

// promptCustomer asks for a customer when no -customer flag was provided.
func promptCustomer(customers []config.Customer, zapLogger *zap.Logger) string {
	zapLogger.Info("customer argument not provided - options:")
	zapLogger.Info("> all")
	for _, customer := range customers {
		zapLogger.Info("> " + customer.Name)
	}
	fmt.Print("Chosen customer: ")
	return readLine()
}

func readLine() string {
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	return strings.TrimSpace(line)
}

func runDaemon(schedule config.ScheduleConfig, healthPoller poller.Poller, reportService report.Service, zapLogger *zap.Logger) {
	cronJob := cron.New()
	_, err := cronJob.AddFunc(schedule.ScanSpec, func() {
		zapLogger.Info("scheduled scan started")
		healthPoller.Scan(context.Background())
	})
	if err != nil {
		zapLogger.Fatal("failed to schedule scan job", zap.Error(err))
	}
	_, err = cronJob.AddFunc(schedule.ReportSpec, func() {
		zapLogger.Info("scheduled report started")
		if e := reportService.Run(context.Background(), report.CustomerAll); e != nil {
			zapLogger.Error("scheduled report failed", zap.Error(e))
		}
	})
	if err != nil {
		zapLogger.Fatal("failed to schedule report job", zap.Error(err))
	}
	cronJob.Start()
	zapLogger.Info("daemon started",
		zap.String("scan_cron", schedule.ScanSpec),
		zap.String("report_cron", schedule.ReportSpec))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down daemon...")
	<-cronJob.Stop().Done()
	zapLogger.Info("daemon exiting")
}
