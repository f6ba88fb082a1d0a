package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin"
	foundation "github.com/estafette/estafette-foundation"
	"github.com/fedora-copr/rpmeta/pkg/api"
	"github.com/fedora-copr/rpmeta/pkg/clients/bodhiapi"
	"github.com/fedora-copr/rpmeta/pkg/clients/coprapi"
	"github.com/fedora-copr/rpmeta/pkg/clients/kojiapi"
	"github.com/fedora-copr/rpmeta/pkg/dataset"
	"github.com/fedora-copr/rpmeta/pkg/services/fetcher"
	"github.com/fedora-copr/rpmeta/pkg/services/predictor"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	jaeger "github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	jprom "github.com/uber/jaeger-lib/metrics/prometheus"
)

var (
	appgroup  string
	app       string
	version   string
	branch    string
	revision  string
	buildDate string
	goVersion = runtime.Version()
)

var (
	// flags
	prometheusMetricsAddress = kingpin.Flag("metrics-listen-address", "The address to listen on for Prometheus metrics requests.").Default(":9001").String()
	prometheusMetricsPath    = kingpin.Flag("metrics-path", "The path to listen for Prometheus metrics requests.").Default("/metrics").String()
	configFilePath           = kingpin.Flag("config", "The path to the yaml config file.").Envar("RPMETA_CONFIG_FILE_PATH").String()

	fetchKojiCommand   = kingpin.Command("fetch-koji", "Fetch completed builds from koji and save them as a dataset.")
	fetchKojiStartDate = fetchKojiCommand.Flag("start-date", "Only fetch builds completed on or after this date (YYYY-MM-DD).").Required().String()
	fetchKojiEndDate   = fetchKojiCommand.Flag("end-date", "Only fetch builds completed before this date (YYYY-MM-DD).").Required().String()
	fetchKojiOutput    = fetchKojiCommand.Flag("output", "The path to write the fetched dataset to.").Default("koji_dataset.json").String()
	fetchKojiTimeout   = fetchKojiCommand.Flag("timeout", "The maximum time the fetch may run before it is aborted.").Default("2h").Duration()

	fetchCoprCommand = kingpin.Command("fetch-copr", "Fetch succeeded builds from copr and save them as a dataset.")
	fetchCoprOutput  = fetchCoprCommand.Flag("output", "The path to write the fetched dataset to.").Default("copr_dataset.json").String()
	fetchCoprTimeout = fetchCoprCommand.Flag("timeout", "The maximum time the fetch may run before it is aborted.").Default("2h").Duration()

	serveCommand         = kingpin.Command("serve", "Serve build duration predictions over http.")
	apiAddress           = serveCommand.Flag("api-listen-address", "The address to listen on for api HTTP requests.").Default(":5000").String()
	modelFilePath        = serveCommand.Flag("model-file", "The path to the model file exported by the trainer.").Envar("RPMETA_MODEL_FILE").String()
	categoryMapsFilePath = serveCommand.Flag("category-maps-file", "The path to the category maps file exported with the model.").Envar("RPMETA_CATEGORY_MAPS_FILE").String()
)

func main() {

	// parse command line parameters
	command := kingpin.Parse()

	// init log format from envvar ESTAFETTE_LOG_FORMAT
	foundation.InitLoggingFromEnv(foundation.NewApplicationInfo(appgroup, app, version, branch, revision, buildDate))

	// start prometheus
	go startPrometheus()

	// configure jaeger tracer
	closer := initJaeger(app)
	defer closer.Close()

	config, err := api.NewConfigReader().ReadConfigFromFile(*configFilePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Reading configuration failed")
	}

	switch command {
	case fetchKojiCommand.FullCommand():
		runFetchKoji(config)
	case fetchCoprCommand.FullCommand():
		runFetchCopr(config)
	case serveCommand.FullCommand():
		runServe(config)
	}
}

func runFetchKoji(config *api.APIConfig) {

	startDate, err := time.Parse("2006-01-02", *fetchKojiStartDate)
	if err != nil {
		log.Fatal().Err(err).Msgf("Start date %v is not a valid YYYY-MM-DD date", *fetchKojiStartDate)
	}
	endDate, err := time.Parse("2006-01-02", *fetchKojiEndDate)
	if err != nil {
		log.Fatal().Err(err).Msgf("End date %v is not a valid YYYY-MM-DD date", *fetchKojiEndDate)
	}
	if !endDate.After(startDate) {
		log.Fatal().Msgf("End date %v is not after start date %v", *fetchKojiEndDate, *fetchKojiStartDate)
	}

	kojiapiClient, err := kojiapi.NewClient(config)
	if err != nil {
		log.Fatal().Err(err).Msg("Creating kojiapi.Client failed")
	}
	kojiapiClient = kojiapi.NewTracingClient(kojiapiClient)
	kojiapiClient = kojiapi.NewLoggingClient(kojiapiClient)
	kojiapiClient = kojiapi.NewMetricsClient(kojiapiClient,
		api.NewRequestCounter("kojiapi_client"),
		api.NewRequestHistogram("kojiapi_client"),
	)

	bodhiapiClient := bodhiapi.NewClient(config)
	bodhiapiClient = bodhiapi.NewTracingClient(bodhiapiClient)
	bodhiapiClient = bodhiapi.NewLoggingClient(bodhiapiClient)
	bodhiapiClient = bodhiapi.NewMetricsClient(bodhiapiClient,
		api.NewRequestCounter("bodhiapi_client"),
		api.NewRequestHistogram("bodhiapi_client"),
	)

	fetcherService := fetcher.NewKojiService(config, kojiapiClient, bodhiapiClient, startDate, endDate)
	fetcherService = fetcher.NewTracingService(fetcherService, "kojifetcher")
	fetcherService = fetcher.NewLoggingService(fetcherService, "kojifetcher")
	fetcherService = fetcher.NewMetricsService(fetcherService,
		api.NewRequestCounter("kojifetcher_service"),
		api.NewRequestHistogram("kojifetcher_service"),
	)

	runFetch(fetcherService, *fetchKojiOutput, *fetchKojiTimeout)
}

func runFetchCopr(config *api.APIConfig) {

	coprapiClient := coprapi.NewClient(config)
	coprapiClient = coprapi.NewTracingClient(coprapiClient)
	coprapiClient = coprapi.NewLoggingClient(coprapiClient)
	coprapiClient = coprapi.NewMetricsClient(coprapiClient,
		api.NewRequestCounter("coprapi_client"),
		api.NewRequestHistogram("coprapi_client"),
	)

	fetcherService := fetcher.NewCoprService(config, coprapiClient)
	fetcherService = fetcher.NewTracingService(fetcherService, "coprfetcher")
	fetcherService = fetcher.NewLoggingService(fetcherService, "coprfetcher")
	fetcherService = fetcher.NewMetricsService(fetcherService,
		api.NewRequestCounter("coprfetcher_service"),
		api.NewRequestHistogram("coprfetcher_service"),
	)

	runFetch(fetcherService, *fetchCoprOutput, *fetchCoprTimeout)
}

func runFetch(fetcherService fetcher.Service, outputPath string, timeout time.Duration) {

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// abort the fetch cleanly on sigterm
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		<-sigs
		log.Warn().Msg("Received signal, aborting fetch...")
		cancel()
	}()

	records, err := fetcherService.FetchData(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Fetching build records failed")
	}

	err = dataset.SaveRecords(outputPath, records)
	if err != nil {
		log.Fatal().Err(err).Msg("Saving the fetched dataset failed")
	}
}

func runServe(config *api.APIConfig) {

	// flags win over the config file for the model artifact locations
	if *modelFilePath != "" {
		config.Model.Path = *modelFilePath
	}
	if *categoryMapsFilePath != "" {
		config.Model.CategoryMapsPath = *categoryMapsFilePath
	}

	regressor, err := predictor.LoadModel(config.Model.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("Loading the model failed")
	}
	categoryMaps, err := predictor.LoadCategoryMaps(config.Model.CategoryMapsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Loading the category maps failed")
	}

	predictorService := predictor.NewService(config, regressor, categoryMaps)
	predictorService = predictor.NewTracingService(predictorService)
	predictorService = predictor.NewLoggingService(predictorService)
	predictorService = predictor.NewMetricsService(predictorService,
		api.NewRequestCounter("predictor_service"),
		api.NewRequestHistogram("predictor_service"),
	)

	// define channel to gracefully shutdown the application
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	// handle api requests
	srv := handleRequests(predictorService)

	// wait for graceful shutdown to finish
	<-sigs
	log.Debug().Msg("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Graceful server shutdown failed")
	}

	log.Info().Msg("Server gracefully stopped")
}

func startPrometheus() {
	log.Debug().
		Str("port", *prometheusMetricsAddress).
		Str("path", *prometheusMetricsPath).
		Msg("Serving Prometheus metrics...")

	http.Handle(*prometheusMetricsPath, promhttp.Handler())

	if err := http.ListenAndServe(*prometheusMetricsAddress, nil); err != nil {
		log.Fatal().Err(err).Msg("Starting Prometheus listener failed")
	}
}

// initJaeger returns an instance of Jaeger Tracer that is configured from
// the JAEGER_* environment variables
func initJaeger(service string) io.Closer {

	cfg, err := jaegercfg.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("Generating Jaeger config from env vars failed")
	}

	closer, err := cfg.InitGlobalTracer(service, jaegercfg.Logger(jaeger.StdLogger), jaegercfg.Metrics(jprom.New()))
	if err != nil {
		log.Fatal().Err(err).Msg("Generating Jaeger tracer failed")
	}

	return closer
}

func createRouter() *gin.Engine {

	// run gin in release mode and other defaults
	gin.SetMode(gin.ReleaseMode)
	gin.DefaultWriter = log.Logger
	gin.DisableConsoleColor()

	// Creates a router without any middleware by default
	router := gin.New()

	// Logging middleware
	router.Use(api.ZeroLogMiddleware())

	// Recovery middleware recovers from any panics and writes a 500 if there was one.
	router.Use(gin.Recovery())

	// Gzip middleware
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	// Opentracing middleware
	router.Use(api.OpenTracingMiddleware())

	// liveness and readiness
	router.GET("/liveness", func(c *gin.Context) {
		c.String(200, "I'm alive!")
	})
	router.GET("/readiness", func(c *gin.Context) {
		c.String(200, "I'm ready!")
	})

	return router
}

func handleRequests(predictorService predictor.Service) *http.Server {

	// listen to http calls
	log.Debug().
		Str("port", *apiAddress).
		Msg("Serving api calls...")

	// create and init router
	router := createRouter()

	predictHandler := predictor.NewHandler(predictorService)
	router.POST("/predict", predictHandler.Predict)

	// instantiate servers instead of using router.Run in order to handle graceful shutdown
	srv := &http.Server{
		Addr:           *apiAddress,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Starting gin router failed")
		}
	}()

	return srv
}
