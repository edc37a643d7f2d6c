package worker

import (
	"context"
	"log"

	"taalimflow/models"
	"taalimflow/utils"
)

// NotifyJob carries one freshly stored submission to the dispatcher.
// Exactly one of the two fields is set.
type NotifyJob struct {
	Contact *models.ContactSubmission
	Demo    *models.DemoRequest
}

// NotifyWorker detaches notification dispatch from the response path:
// handlers enqueue after the store write succeeds and respond
// immediately; delivery failures stay inside the worker.
type NotifyWorker struct {
	notifier *utils.Notifier
	jobs     chan NotifyJob
	logger   *log.Logger
}

func NewNotifyWorker(notifier *utils.Notifier, logger *log.Logger) *NotifyWorker {
	return &NotifyWorker{
		notifier: notifier,
		jobs:     make(chan NotifyJob, 64),
		logger:   logger,
	}
}

// Enqueue never blocks the request; if the queue is full the job is
// dropped with a log line.
func (nw *NotifyWorker) Enqueue(job NotifyJob) {
	select {
	case nw.jobs <- job:
	default:
		nw.logger.Println("Notification queue full, dropping job")
	}
}

func (nw *NotifyWorker) Start(ctx context.Context) {
	nw.logger.Println("Notification worker started")

	for {
		select {
		case <-ctx.Done():
			nw.logger.Println("Notification worker shutting down...")
			return
		case job := <-nw.jobs:
			nw.process(job)
		}
	}
}

func (nw *NotifyWorker) process(job NotifyJob) {
	switch {
	case job.Contact != nil:
		nw.notifier.NotifyContactSubmission(job.Contact)
	case job.Demo != nil:
		nw.notifier.NotifyDemoRequest(job.Demo)
	}
}
