package main

import (
	"encoding/json"
	"log"
	"os"
	"os/signal"

	camomile "github.com/camomile-project/camomile-go"
)

// Watches a corpus and a queue, printing every mutation the server pushes.
func main() {
	client, err := camomile.NewClient("http://localhost:3000", nil)
	if err != nil {
		log.Fatal(err)
	}
	if err := client.Login("admin", "password"); err != nil {
		log.Fatal(err)
	}
	defer func() {
		_ = client.Logout()
	}()

	corpora, err := client.Corpora(&camomile.ListOptions{Limit: 1})
	if err != nil || len(corpora) == 0 {
		log.Fatal("need at least one readable corpus")
	}
	corpusID := corpora[0].ID

	events := client.Events()
	ack, err := events.WatchCorpus(corpusID, func(payload json.RawMessage) {
		log.Printf("corpus %s changed: %s", corpusID, payload)
	})
	if err != nil {
		log.Fatal(err)
	}
	if !ack.Subscribed() {
		log.Fatalf("subscription not confirmed for corpus %s", corpusID)
	}
	log.Printf("watching corpus %s on channel %s", corpusID, events.ChannelID())

	queues, err := client.Queues(nil)
	if err != nil {
		log.Fatal(err)
	}
	for _, q := range queues {
		queueID := q.ID
		if _, err := events.WatchQueue(queueID, func(payload json.RawMessage) {
			log.Printf("queue %s length is now %s", queueID, payload)
		}); err != nil {
			log.Fatal(err)
		}
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop
}
