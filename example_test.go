package xlogq_test

import (
	"context"
	"fmt"

	"github.com/trickstertwo/xlogq"
)

func printer() xlogq.Listener {
	return xlogq.ListenerFunc(func(ev *xlogq.Event) error {
		fmt.Printf("%s [%s] %s\n", ev.Level, ev.TagText(), ev.Message())
		return nil
	})
}

func ExampleLogger_threaded() {
	l, err := xlogq.NewBuilder().
		WithMode(xlogq.ModeThreaded).
		WithMinLevel(xlogq.LevelInfo).
		AddListener(printer()).
		Build()
	if err != nil {
		panic(err)
	}
	defer l.Close()

	l.Info("listening", xlogq.Int("port", 8080))
	l.Log("below the minimum level")
	l.Named("payments").Warn("slow response")

	if err := l.Flush().Wait(context.Background()); err != nil {
		panic(err)
	}
	// Output:
	// Info [Logger] listening
	// Warn [payments] slow response
}

func ExampleLogger_manualPoll() {
	l, err := xlogq.NewBuilder().
		WithMode(xlogq.ModeManualPoll).
		AddListener(printer()).
		Build()
	if err != nil {
		panic(err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		l.Error("from a worker")
	}()
	<-done

	fmt.Println("queued:", l.Queue().Len())
	if err := l.PollEvents(); err != nil {
		panic(err)
	}
	// On the consumer goroutine events are dispatched inline.
	l.Info("from the consumer")
	_ = l.Stop()
	// Output:
	// queued: 1
	// Error [Logger] from a worker
	// Info [Logger] from the consumer
}

func ExampleQueue_Flush() {
	q := xlogq.NewQueue()
	if err := q.Bootstrap(xlogq.ModeThreaded); err != nil {
		panic(err)
	}
	for i := range 3 {
		_ = q.Enqueue(func() error {
			fmt.Println("action", i)
			return nil
		})
	}
	_ = q.Flush().Wait(context.Background())
	_ = q.Stop()
	fmt.Println(q.State())
	// Output:
	// action 0
	// action 1
	// action 2
	// stopped
}
