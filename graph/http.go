package graph

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/tryfix/log"
	"github.com/tryfix/traceable-context"
)

type httpErr struct {
	Err string `json:"error"`
}

type nodeView struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Kind      string   `json:"kind"`
	Connector string   `json:"connector"`
	Config    []string `json:"config"`
}

type httpHandler struct {
	graph  *Graph
	logger log.Logger
}

func (h *httpHandler) view(n *Node) nodeView {
	d := n.Descriptor()
	return nodeView{
		ID:        n.ID().String(),
		Name:      n.Name(),
		Type:      n.TypeString(),
		Kind:      string(d.Kind()),
		Connector: d.Connector(),
		Config:    d.Config().Keys(),
	}
}

func (h *httpHandler) encodeError(w http.ResponseWriter, e error) {
	byt, err := json.Marshal(httpErr{Err: e.Error()})
	if err != nil {
		h.logger.Error(err)
		return
	}

	if _, err := w.Write(byt); err != nil {
		h.logger.Error(err)
	}
}

// MakeEndpoints starts an HTTP server exposing the execution plan, the node
// list and node details.
func MakeEndpoints(host string, graph *Graph, logger log.Logger) {
	r := mux.NewRouter()
	h := httpHandler{
		graph:  graph,
		logger: logger,
	}

	r.HandleFunc(`/plan`, func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set(`Content-Type`, `application/json`)
		writer.Header().Set(`Access-Control-Allow-Origin`, `*`)

		ctx := traceable_context.WithUUID(uuid.New())
		if err := json.NewEncoder(writer).Encode(graph.Plan()); err != nil {
			logger.ErrorContext(ctx, err)
		}
	}).Methods(http.MethodGet)

	r.HandleFunc(`/nodes`, func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set(`Content-Type`, `application/json`)
		writer.Header().Set(`Access-Control-Allow-Origin`, `*`)

		views := make([]nodeView, 0)
		for _, n := range graph.Nodes() {
			views = append(views, h.view(n))
		}

		if err := json.NewEncoder(writer).Encode(views); err != nil {
			logger.Error(err)
		}
	}).Methods(http.MethodGet)

	r.HandleFunc(`/nodes/{id}`, func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set(`Content-Type`, `application/json`)

		vars := mux.Vars(request)
		id, ok := vars[`id`]
		if !ok {
			logger.Error(`unknown route parameter`)
			return
		}

		for _, n := range graph.Nodes() {
			if n.ID().String() == id {
				if err := json.NewEncoder(writer).Encode(h.view(n)); err != nil {
					logger.Error(err)
				}
				return
			}
		}

		writer.WriteHeader(http.StatusNotFound)
		h.encodeError(writer, fmt.Errorf(`node [%s] dose not exist`, id))
	}).Methods(http.MethodGet)

	go func() {
		err := http.ListenAndServe(host, handlers.CORS()(r))
		if err != nil {
			logger.Error(`kconnect.graph.Http`,
				fmt.Sprintf(`Cannot start web server : %+v`, err))
		}
	}()

	logger.Info(fmt.Sprintf(`Http server started on %s`, host))
}
