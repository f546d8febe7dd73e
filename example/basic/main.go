package main

import (
	"log"

	camomile "github.com/camomile-project/camomile-go"
)

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

	corpus, err := client.CreateCorpus(camomile.CorpusCreate{Name: "demo"})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("corpus %s created", corpus.ID)

	medium, err := client.CreateMedium(corpus.ID, camomile.MediumCreate{
		Name: "episode1",
		URL:  "http://localhost:3000/media/episode1.mp4",
	})
	if err != nil {
		log.Fatal(err)
	}

	layer, err := client.CreateLayer(corpus.ID, camomile.LayerCreate{
		Name:         "speakers",
		FragmentType: "segment",
		DataType:     "label",
	})
	if err != nil {
		log.Fatal(err)
	}

	annotation, err := client.CreateAnnotation(layer.ID, camomile.AnnotationCreate{
		IDMedium: medium.ID,
		Fragment: map[string]float64{"start": 12.5, "end": 13.75},
		Data:     map[string]string{"speaker": "alice"},
	})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("annotation %s created", annotation.ID)

	annotations, err := client.LayerAnnotations(layer.ID, medium.ID, nil)
	if err != nil {
		log.Fatal(err)
	}
	for _, a := range annotations {
		var data struct {
			Speaker string `json:"speaker"`
		}
		if err := a.DecodeData(&data); err != nil {
			log.Fatal(err)
		}
		log.Printf("annotation %s: speaker %s", a.ID, data.Speaker)
	}
}
