package main

import (
	"github.com/gin-gonic/gin"
	"go.etcd.io/bbolt"

	"gridBook/contracts"
)

type ServiceContainer struct {
	Database           *bbolt.DB
	WorkbookRepository contracts.WorkbookRepository
	WorkbookService    contracts.WorkbookService
	WebhookDispatcher  contracts.StateDispatcher
	ApiController      contracts.ApiController
	Router             *gin.Engine
}

func BuildServiceContainer(configDbPath string) (container ServiceContainer, err error) {
	container.Database, err = bbolt.Open(configDbPath, 0600, nil)

	parser := NewValueParser()

	container.WebhookDispatcher = NewWebhookDispatcher()
	container.WorkbookRepository = NewBoltWorkbookRepository(container.Database)
	container.WorkbookService = NewWorkbookStateService(
		container.WorkbookRepository,
		container.WebhookDispatcher,
		NewCellValidator(parser),
		NewCellFormatter(parser),
		NewComputedColumnEvaluator(parser),
		StaticSchemaSuggester,
	)
	container.ApiController = NewApiController(container.WorkbookService, container.WebhookDispatcher)

	container.Router = SetupRouter(container.ApiController)

	return
}
