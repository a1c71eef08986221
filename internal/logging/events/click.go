package events

import "github.com/atomicstack/headless-menu/internal/logging"

type ClickTracer struct{}

var Click = ClickTracer{}

func (ClickTracer) Publish(targetID string, listeners int) {
	logging.Trace("click.publish", map[string]interface{}{"target": targetID, "listeners": listeners})
}

func (ClickTracer) Subscribe(id uint64) {
	logging.Trace("click.subscribe", map[string]interface{}{"subscription": id})
}

func (ClickTracer) Unsubscribe(id uint64) {
	logging.Trace("click.unsubscribe", map[string]interface{}{"subscription": id})
}
