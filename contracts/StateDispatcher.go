package contracts

type StateDispatcher interface {
	SetWebhookUrl(workbookId string, webhookUrl string)
	GetWebhookUrl(workbookId string) string

	// Notify hands a settled snapshot to the subscribed webhook, if any.
	// Fire-and-forget: delivery is outside the core correctness contract.
	Notify(workbookId string, snapshot *Workbook)

	Start()
	Close()
}
