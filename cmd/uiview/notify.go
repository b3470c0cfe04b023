package main

import (
	"github.com/CoderValencia/uiview/pkg/log"
	"github.com/CoderValencia/uiview/pkg/view"
)

// notifier logs every view notification at info level.
type notifier struct {
	view.BaseEventHandler
	logger log.Logger
	name   string
}

func newNotifier(logger log.Logger, name string) *notifier {
	return &notifier{logger: log.OrNoop(logger), name: name}
}

func (n *notifier) OnVisibilityChanged(current view.Visibility) {
	n.logger.Info("visibility", log.String("view", n.name), log.Stringer("state", current))
}

func (n *notifier) OnShowStarted() {
	n.logger.Info("show started", log.String("view", n.name))
}

func (n *notifier) OnBecameVisible() {
	n.logger.Info("became visible", log.String("view", n.name))
}

func (n *notifier) OnHideStarted() {
	n.logger.Info("hide started", log.String("view", n.name))
}

func (n *notifier) OnBecameHidden() {
	n.logger.Info("became hidden", log.String("view", n.name))
}

func (n *notifier) OnCommandIssued(cmd view.Command) {
	n.logger.Info("command", log.String("view", n.name), log.Stringer("command", cmd))
}
