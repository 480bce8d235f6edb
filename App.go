package main

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

const ExitCodeMainError = 1

const DefaultListenPort = ":8080"

func RunApp() error {
	gin.SetMode(gin.ReleaseMode)
	SetupLogging(os.Getenv("LOG_LEVEL"))

	serviceContainer, err := BuildServiceContainer(os.Getenv("DATABASE_FILEPATH"))

	if err == nil {
		serviceContainer.WebhookDispatcher.Start()
		defer serviceContainer.WebhookDispatcher.Close()
		defer serviceContainer.Database.Close()

		err = http.ListenAndServe(listenPort(), serviceContainer.Router)
	}

	return err
}

func listenPort() string {
	if port := os.Getenv("LISTEN_PORT"); port != "" {
		return ":" + port
	}
	return DefaultListenPort
}

func HandleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
	}

	if err != nil {
		return ExitCodeMainError
	}

	return 0
}
