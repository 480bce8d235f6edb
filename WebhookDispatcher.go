package main

import (
	"bytes"
	"log/slog"
	"net/http"
	"sync"
	"time"

	json "github.com/bytedance/sonic"

	"gridBook/contracts"
)

const WebhookWorkersCount = 5

type WebhookSendCommand struct {
	Webhook  string
	Snapshot *contracts.Workbook
}

// WebhookDispatcher delivers settled workbook snapshots to per-workbook
// subscription URLs through a bounded queue and a fixed pool of sender
// workers. Delivery is fire-and-forget: failures are logged, never
// reported back to the mutation that triggered them.
type WebhookDispatcher struct {
	queue    chan WebhookSendCommand
	mu       sync.RWMutex
	webhooks map[string]string
}

func NewWebhookDispatcher() *WebhookDispatcher {
	return &WebhookDispatcher{
		queue:    make(chan WebhookSendCommand, 20),
		webhooks: map[string]string{},
	}
}

func (d *WebhookDispatcher) SetWebhookUrl(workbookId string, webhookUrl string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if webhookUrl == "" {
		delete(d.webhooks, workbookId)
	} else {
		d.webhooks[workbookId] = webhookUrl
	}
}

func (d *WebhookDispatcher) GetWebhookUrl(workbookId string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.webhooks[workbookId]
}

func (d *WebhookDispatcher) Notify(workbookId string, snapshot *contracts.Workbook) {
	if d.GetWebhookUrl(workbookId) == "" {
		return
	}

	go d.addToQueue(workbookId, snapshot)
}

func (d *WebhookDispatcher) addToQueue(workbookId string, snapshot *contracts.Workbook) {
	if webhook := d.GetWebhookUrl(workbookId); webhook != "" {
		d.queue <- WebhookSendCommand{
			Webhook:  webhook,
			Snapshot: snapshot,
		}
	}
}

func (d *WebhookDispatcher) Start() {
	for i := 0; i < WebhookWorkersCount; i++ {
		go d.runWebhookSenderWorker()
	}
}

func (d *WebhookDispatcher) Close() {
	close(d.queue)
}

func (d *WebhookDispatcher) runWebhookSenderWorker() {
	client := &http.Client{
		Timeout: time.Second * 5,
	}

	for command := range d.queue {
		payload, _ := json.Marshal(command.Snapshot)
		response, err := client.Post(command.Webhook, "application/json", bytes.NewBuffer(payload))

		if err != nil {
			slog.Warn("webhook send failed", "webhook", command.Webhook, "error", err)
		} else if response.StatusCode >= 300 {
			slog.Warn("unexpected webhook response status", "webhook", command.Webhook, "status", response.Status)
		}
	}
}
