package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/xtding233/card-detail/internal/card"
	"github.com/xtding233/card-detail/internal/detail"
)

// Client calls the card detail service and decodes views.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Derive renders rec on the server at the given tier.
func (c *Client) Derive(ctx context.Context, rec *card.Record, tier card.Tier, opts ...grpc.CallOption) (*detail.View, error) {
	cs, err := toStruct(rec)
	if err != nil {
		return nil, err
	}
	req := &structpb.Struct{Fields: map[string]*structpb.Value{
		"card": structpb.NewStructValue(cs),
		"tier": structpb.NewNumberValue(float64(tier)),
	}}
	return c.call(ctx, deriveMethod, req, opts...)
}

// Lookup renders the pool card with the given id.
func (c *Client) Lookup(ctx context.Context, id card.GameID, tier card.Tier, opts ...grpc.CallOption) (*detail.View, error) {
	req := &structpb.Struct{Fields: map[string]*structpb.Value{
		"id":   structpb.NewStringValue(string(id)),
		"tier": structpb.NewNumberValue(float64(tier)),
	}}
	return c.call(ctx, lookupMethod, req, opts...)
}

func (c *Client) call(ctx context.Context, method string, req *structpb.Struct, opts ...grpc.CallOption) (*detail.View, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, req, out, opts...); err != nil {
		return nil, err
	}
	v := new(detail.View)
	if err := fromStruct(out, v); err != nil {
		return nil, err
	}
	return v, nil
}
