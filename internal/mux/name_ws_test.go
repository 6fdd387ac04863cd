package mux

import (
	"hobbitname-server/pkg/namepool"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

func Test_getNameWS(t *testing.T) {
	a := assert.New(t)

	ts := newTestServer(Options{})
	defer ts.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+wsPath, nil)
	if !a.NoError(err) {
		return
	}
	defer conn.Close()

	var resp wsNameResponse
	a.NoError(conn.WriteJSON(wsNameRequest{Gender: "male"}))
	a.NoError(conn.ReadJSON(&resp))
	a.Empty(resp.Error)
	parts := strings.Split(resp.Name, " ")
	if a.Len(parts, 2) {
		a.True(inPool(namepool.Male, parts[0]), resp.Name)
		a.True(inPool(namepool.Surnames, parts[1]), resp.Name)
	}

	resp = wsNameResponse{}
	a.NoError(conn.WriteJSON(wsNameRequest{}))
	a.NoError(conn.ReadJSON(&resp))
	a.NotEmpty(resp.Name)

	resp = wsNameResponse{}
	a.NoError(conn.WriteJSON(wsNameRequest{Gender: "dwarf"}))
	a.NoError(conn.ReadJSON(&resp))
	a.Empty(resp.Name)
	a.Equal(`invalid argument: gender must be male or female (got "dwarf")`, resp.Error)

	resp = wsNameResponse{}
	a.NoError(conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	a.NoError(conn.ReadJSON(&resp))
	a.Equal("could not parse request", resp.Error)

	a.NoError(conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
}

func Test_roll(t *testing.T) {
	m := NewMux("", nil, Options{})

	resp := m.roll([]byte(`{"gender":"female"}`))
	assert.Empty(t, resp.Error)
	assert.True(t, inPool(namepool.Female, strings.SplitN(resp.Name, " ", 2)[0]), resp.Name)
}
