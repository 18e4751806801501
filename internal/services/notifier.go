package services

import "log"

// LogNotifier surfaces pipeline progress on the process log. Handlers stay
// free of parsing concerns; the pipeline stays free of logging ones.
type LogNotifier struct{}

func (LogNotifier) OnProgress(stage string) {
	log.Printf("🔄 %s", stage)
}

func (LogNotifier) OnWarning(msg string) {
	log.Printf("⚠️  %s", msg)
}

func (LogNotifier) OnError(err error) {
	log.Printf("❌ %v", err)
}
