package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gridBook/contracts"
)

type ApiController struct {
	WorkbookService   contracts.WorkbookService
	WebhookDispatcher contracts.StateDispatcher
}

func NewApiController(workbookService contracts.WorkbookService, webhookDispatcher contracts.StateDispatcher) *ApiController {
	return &ApiController{
		WorkbookService:   workbookService,
		WebhookDispatcher: webhookDispatcher,
	}
}

type WorkbookEndpointParams struct {
	WorkbookId string `uri:"workbook_id" binding:"required"`
}

type CellEndpointParams struct {
	WorkbookId string `uri:"workbook_id" binding:"required"`
	Row        int    `uri:"row"`
	Col        int    `uri:"col"`
}

type ColumnEndpointParams struct {
	WorkbookId string `uri:"workbook_id" binding:"required"`
	ColumnId   string `uri:"column_id" binding:"required"`
}

type SetCellRequest struct {
	Value string `json:"value"`
}

type SetRowCountRequest struct {
	RowCount *int `json:"rowCount" binding:"required"`
}

type FillDownRequest struct {
	Row *int `json:"row" binding:"required"`
	Col *int `json:"col" binding:"required"`
}

type SuggestSchemaRequest struct {
	Purpose string `json:"purpose" binding:"required"`
}

type SubscribeRequest struct {
	Webhook string `json:"webhook"`
}

func (api *ApiController) GetWorkbookAction(c *gin.Context) {
	params := WorkbookEndpointParams{}
	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, api.WorkbookService.Get(params.WorkbookId))
}

func (api *ApiController) GetGridAction(c *gin.Context) {
	params := WorkbookEndpointParams{}
	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, api.WorkbookService.GetGrid(params.WorkbookId))
}

func (api *ApiController) ExportAction(c *gin.Context) {
	params := WorkbookEndpointParams{}
	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rows": api.WorkbookService.Export(params.WorkbookId)})
}

func (api *ApiController) SetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SetCellRequest{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	var commit *contracts.CellCommit
	if err == nil {
		commit, err = api.WorkbookService.SetCell(params.WorkbookId, params.Row, params.Col, request.Value)
	}

	if err != nil {
		api.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, commit)
}

func (api *ApiController) AddColumnAction(c *gin.Context) {
	params := WorkbookEndpointParams{}
	column := contracts.Column{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&column)
	}

	var created *contracts.Column
	if err == nil {
		created, err = api.WorkbookService.AddColumn(params.WorkbookId, column)
	}

	if err != nil {
		api.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (api *ApiController) UpdateColumnAction(c *gin.Context) {
	params := ColumnEndpointParams{}
	patch := contracts.ColumnPatch{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&patch)
	}

	var updated *contracts.Column
	if err == nil {
		updated, err = api.WorkbookService.UpdateColumn(params.WorkbookId, params.ColumnId, patch)
	}

	if err != nil {
		api.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (api *ApiController) RemoveColumnAction(c *gin.Context) {
	params := ColumnEndpointParams{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = api.WorkbookService.RemoveColumn(params.WorkbookId, params.ColumnId)
	}

	if err != nil {
		api.renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (api *ApiController) SetRowCountAction(c *gin.Context) {
	params := WorkbookEndpointParams{}
	request := SetRowCountRequest{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	if err == nil {
		err = api.WorkbookService.SetRowCount(params.WorkbookId, *request.RowCount)
	}

	if err != nil {
		api.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.WorkbookService.Get(params.WorkbookId))
}

func (api *ApiController) FillDownAction(c *gin.Context) {
	params := WorkbookEndpointParams{}
	request := FillDownRequest{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	var filled int
	if err == nil {
		filled, err = api.WorkbookService.FillDown(params.WorkbookId, *request.Row, *request.Col)
	}

	if err != nil {
		api.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"filled": filled})
}

func (api *ApiController) SuggestSchemaAction(c *gin.Context) {
	params := WorkbookEndpointParams{}
	request := SuggestSchemaRequest{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	var snapshot *contracts.Workbook
	if err == nil {
		snapshot, err = api.WorkbookService.RegenerateSchema(params.WorkbookId, request.Purpose)
	}

	if err != nil {
		api.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, snapshot)
}

func (api *ApiController) SubscribeAction(c *gin.Context) {
	params := WorkbookEndpointParams{}
	request := SubscribeRequest{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	if err != nil {
		api.renderError(c, err)
		return
	}

	api.WebhookDispatcher.SetWebhookUrl(params.WorkbookId, request.Webhook)
	c.JSON(http.StatusOK, gin.H{"webhook": api.WebhookDispatcher.GetWebhookUrl(params.WorkbookId)})
}

// renderError maps domain errors onto HTTP statuses. Per-cell validation
// verdicts are advisory payload, not errors; only structural misuse of the
// API lands here.
func (api *ApiController) renderError(c *gin.Context, err error) {
	if errors.Is(err, contracts.ColumnNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
}
