// Package jobs queues webhook-triggered deployments for background
// execution.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/africonnect/deployctl/internal/core"
	"github.com/africonnect/deployctl/internal/journal"
)

// dispatcher implements core.DeployDispatcher. Deployments are executed by a
// single worker so runs never overlap: the working tree and the compose
// stack are exclusively owned by one run at a time.
type dispatcher struct {
	deployer core.Deployer
	journal  *journal.Journal
	queue    chan *core.DeployRequest
	wg       sync.WaitGroup
	logger   *slog.Logger
}

// NewDispatcher initializes a dispatcher with the given queue capacity. A
// nil journal disables history recording.
func NewDispatcher(deployer core.Deployer, jnl *journal.Journal, queueSize int, logger *slog.Logger) core.DeployDispatcher {
	if queueSize <= 0 {
		queueSize = 8
	}
	d := &dispatcher{
		deployer: deployer,
		journal:  jnl,
		queue:    make(chan *core.DeployRequest, queueSize),
		logger:   logger,
	}
	d.wg.Add(1)
	go d.worker()
	return d
}

// worker processes requests from the queue until it is closed.
func (d *dispatcher) worker() {
	defer d.wg.Done()
	d.logger.Info("deploy worker started")

	for req := range d.queue {
		d.process(req)
	}

	d.logger.Info("deploy worker stopped")
}

func (d *dispatcher) process(req *core.DeployRequest) {
	d.logger.Info("running deployment",
		"trigger", req.Trigger,
		"ref", req.Ref,
		"head", req.HeadSHA,
	)

	res, err := d.deployer.Run(context.Background(), req)
	if err != nil {
		d.logger.Error("deployment failed", "trigger", req.Trigger, "error", err)
	} else {
		d.logger.Info("deployment succeeded",
			"previous", res.PreviousRevision,
			"new", res.NewRevision,
			"rebuilt", res.ImageRebuilt,
		)
	}

	if d.journal != nil {
		if jerr := d.journal.Append(journal.NewEntry(req, res, err)); jerr != nil {
			d.logger.Error("failed to record deployment", "error", jerr)
		}
	}
}

// Dispatch queues a deployment request.
func (d *dispatcher) Dispatch(_ context.Context, req *core.DeployRequest) error {
	d.logger.Info("queuing deployment", "trigger", req.Trigger, "ref", req.Ref)

	select {
	case d.queue <- req:
		return nil
	default:
		return fmt.Errorf("deploy queue is full, cannot accept new deployment")
	}
}

// Stop gracefully shuts down the dispatcher, waiting for queued deployments
// to finish.
func (d *dispatcher) Stop() {
	d.logger.Info("stopping dispatcher and waiting for deployments to finish")
	close(d.queue)
	d.wg.Wait()
}
