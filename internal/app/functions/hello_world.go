package functions

import (
	"context"
	"fmt"

	"github.com/yigit/coursecraft/internal/pkg/events"
)

type helloWorldData struct {
	Email string `json:"email"`
}

// HelloWorld greets the email carried by the event
func HelloWorld() events.Function {
	return events.Function{
		ID:      HelloWorldID,
		Name:    "Hello World",
		Trigger: events.Trigger{Event: HelloWorldEvent},
		Handler: func(_ context.Context, evt events.Event) (interface{}, error) {
			var data helloWorldData
			if len(evt.Data) > 0 {
				if err := evt.Decode(&data); err != nil {
					return nil, err
				}
			}
			return map[string]string{"message": fmt.Sprintf("Hello %s!", data.Email)}, nil
		},
	}
}
