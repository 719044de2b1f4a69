package network

import (
	"testing"

	"github.com/cbodonnell/circledodge/pkg/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientManager_AddRemove(t *testing.T) {
	cm := NewClientManager()

	a, err := cm.AddClient("127.0.0.1:1000", ClientFormatBinary)
	require.NoError(t, err)
	b, err := cm.AddClient("127.0.0.1:1001", ClientFormatJSON)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, cm.Count())
	assert.True(t, cm.Exists(a.ID))

	cm.RemoveClient(a.ID)
	cm.RemoveClient(a.ID)
	assert.False(t, cm.Exists(a.ID))
	assert.Equal(t, 1, cm.Count())

	_, open := <-a.Messages()
	assert.False(t, open)

	events := cm.GetClientEventChan()
	assert.Equal(t, ClientEvent{ClientID: a.ID, Type: ClientEventTypeConnect}, <-events)
	assert.Equal(t, ClientEvent{ClientID: b.ID, Type: ClientEventTypeConnect}, <-events)
	assert.Equal(t, ClientEvent{ClientID: a.ID, Type: ClientEventTypeDisconnect}, <-events)
	assert.Len(t, events, 0)
}

func TestClientManager_Broadcast(t *testing.T) {
	cm := NewClientManager()
	a, err := cm.AddClient("a", ClientFormatBinary)
	require.NoError(t, err)
	b, err := cm.AddClient("b", ClientFormatBinary)
	require.NoError(t, err)

	// fill b so the next broadcast cannot reach it
	for i := 0; i < ClientSendBufferSize; i++ {
		require.True(t, cm.Send(b.ID, &messages.Message{Type: "filler"}))
	}
	assert.False(t, cm.Send(b.ID, &messages.Message{Type: "filler"}))

	msg := &messages.Message{Type: "collision"}
	assert.Equal(t, 1, cm.Broadcast(msg))
	assert.Same(t, msg, <-a.Messages())

	assert.False(t, cm.Send(999, msg))
}

func TestParseClientFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    ClientFormat
		wantErr bool
	}{
		{in: "", want: ClientFormatBinary},
		{in: "binary", want: ClientFormatBinary},
		{in: "json", want: ClientFormatJSON},
		{in: "xml", want: ClientFormatBinary, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClientFormat(tt.in)
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.want, got)
		})
	}
}
