package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gridBook/contracts"
)

const ApiVersion = "v1"

func SetupRouter(controller contracts.ApiController) *gin.Engine {
	router := gin.New()

	apiRouterGroup := router.Group("/api/" + ApiVersion)

	apiRouterGroup.GET("/:workbook_id", controller.GetWorkbookAction)
	apiRouterGroup.GET("/:workbook_id/grid", controller.GetGridAction)
	apiRouterGroup.GET("/:workbook_id/export", controller.ExportAction)

	apiRouterGroup.POST("/:workbook_id/cells/:row/:col", controller.SetCellAction)

	apiRouterGroup.POST("/:workbook_id/columns", controller.AddColumnAction)
	apiRouterGroup.PATCH("/:workbook_id/columns/:column_id", controller.UpdateColumnAction)
	apiRouterGroup.DELETE("/:workbook_id/columns/:column_id", controller.RemoveColumnAction)

	apiRouterGroup.POST("/:workbook_id/rows", controller.SetRowCountAction)
	apiRouterGroup.POST("/:workbook_id/filldown", controller.FillDownAction)
	apiRouterGroup.POST("/:workbook_id/suggest", controller.SuggestSchemaAction)
	apiRouterGroup.POST("/:workbook_id/subscribe", controller.SubscribeAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	return router
}
