package contracts

import "github.com/gin-gonic/gin"

type ApiController interface {
	GetWorkbookAction(c *gin.Context)
	GetGridAction(c *gin.Context)
	ExportAction(c *gin.Context)
	SetCellAction(c *gin.Context)
	AddColumnAction(c *gin.Context)
	UpdateColumnAction(c *gin.Context)
	RemoveColumnAction(c *gin.Context)
	SetRowCountAction(c *gin.Context)
	FillDownAction(c *gin.Context)
	SuggestSchemaAction(c *gin.Context)
	SubscribeAction(c *gin.Context)
}
