// Package scheduler runs periodic background jobs for the bot, such as
// sweeping expired chat states. Each job gets its own ticker goroutine and all
// of them stop together.
package scheduler
