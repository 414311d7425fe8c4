package main

import (
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/nezuni1812/Vivid/application/ports/outbound"
	"github.com/nezuni1812/Vivid/application/services"
	"github.com/nezuni1812/Vivid/config"
	"github.com/nezuni1812/Vivid/infrastructure/adapters"
	"github.com/nezuni1812/Vivid/infrastructure/gin_interface/controllers"
	"github.com/nezuni1812/Vivid/middleware"
	mockengine "github.com/nezuni1812/Vivid/mock"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("No .env file loaded")
	}

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	}))

	s3Config, err := config.GetS3Config()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get s3 config")
	}

	dynamoConfig, err := config.GetDynamoConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get dynamo config")
	}

	gptConfig, err := config.GetGptConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get gpt config")
	}

	jwksUrl := os.Getenv("JWKS_URL")
	if jwksUrl == "" {
		log.Fatal().Msg("JWKS_URL is not set!")
	}

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(120, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	s3Client := s3.New(sess)
	dynamoClient := dynamodb.New(sess)

	contentFetcher := adapters.NewContentFetcher(zeroLogger)

	var basicEngine outbound.SpeechSynthesizerPort
	var neuralEngine outbound.SpeechSynthesizerPort
	var effectProcessor outbound.EffectProcessorPort
	var audioCodec outbound.AudioCodecPort

	if os.Getenv("MOCK_TTS") == "true" {
		zeroLogger.Warn("MOCK_TTS enabled: using canned synthesizer and codec")
		mockSynthesizer := mockengine.NewSpeechSynthesizer()
		basicEngine = mockSynthesizer
		neuralEngine = mockSynthesizer
		effectProcessor = mockengine.NewEffectProcessor()
		audioCodec = mockengine.NewAudioCodec()
	} else {
		basicTTSConfig, err := config.GetBasicTTSConfig()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to get basic tts config")
		}
		neuralTTSConfig, err := config.GetNeuralTTSConfig()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to get neural tts config")
		}
		basicEngine = adapters.NewBasicTTSEngine(contentFetcher, basicTTSConfig)
		neuralEngine = adapters.NewNeuralTTSEngine(contentFetcher, neuralTTSConfig)
		effectProcessor = adapters.NewFFmpegEffectProcessor(zeroLogger)
		audioCodec = adapters.NewFFmpegAudioCodec(zeroLogger)
	}

	segmenter := services.NewSentenceSegmenter()
	voiceResolver := services.NewVoiceResolver()

	engineRouter := services.NewEngineRouter(basicEngine, neuralEngine)

	chunkSynthesizer := services.NewChunkSynthesizer(zeroLogger, engineRouter, effectProcessor, audioCodec, workerPool)

	timelineAssembler := services.NewTimelineAssembler(zeroLogger, audioCodec)

	narrationPipeline := services.NewNarrationPipeline(zeroLogger, workerPool, segmenter, voiceResolver, chunkSynthesizer, timelineAssembler)

	narrationStore := adapters.NewS3NarrationStore(zeroLogger, s3Client, s3Config)

	narrationCache := adapters.NewDynamoNarrationCache(zeroLogger, dynamoClient, dynamoConfig)

	scriptGenerator := adapters.NewScriptGenerator(gptConfig, workerPool, zeroLogger)

	scriptWriter := services.NewScriptWriter(zeroLogger, scriptGenerator)

	narrationController := controllers.NewNarrationController(zeroLogger, narrationPipeline, narrationStore, narrationCache)

	scriptController := controllers.NewScriptController(zeroLogger, scriptWriter)

	router := gin.Default()

	err = router.SetTrustedProxies(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	authHandler, err := middleware.NewAuthHandler(jwksUrl)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create auth handler!")
	}

	router.Use(authHandler.AuthMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	narrationController.RegisterRoutes(router)
	scriptController.RegisterRoutes(router)

	err = router.Run(":8080")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
