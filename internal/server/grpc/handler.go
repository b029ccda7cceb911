package grpc

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avoronov/itemkeeper/internal/common"
	pb "github.com/avoronov/itemkeeper/internal/proto"
	"github.com/avoronov/itemkeeper/internal/server/models"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func itemToProto(item *models.Item) *pb.Item {
	return &pb.Item{
		Id:            item.ID,
		Name:          item.Name,
		Description:   item.Description.String,
		Price:         item.Price.StringFixed(2),
		ExternalPrice: item.ExternalPrice.StringFixed(2),
		CreatedAt:     timestamppb.New(item.CreatedAt),
		UpdatedAt:     timestamppb.New(item.UpdatedAt),
	}
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "invalid price %q", raw)
	}
	return price, nil
}

func toStatusError(err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "item not found")
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) ListItems(ctx context.Context, req *pb.ListItemsRequest) (*pb.ListItemsResponse, error) {

	result, err := s.items.List(ctx)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, toStatusError(err)
	}

	resp := &pb.ListItemsResponse{}
	for _, item := range result {
		resp.Items = append(resp.Items, itemToProto(item))
	}
	return resp, nil
}

func (s *GRPCServer) GetItem(ctx context.Context, req *pb.GetItemRequest) (*pb.GetItemResponse, error) {

	item, err := s.items.Get(ctx, req.Id)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &pb.GetItemResponse{Item: itemToProto(item)}, nil
}

func (s *GRPCServer) CreateItem(ctx context.Context, req *pb.CreateItemRequest) (*pb.CreateItemResponse, error) {

	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	item := &models.Item{
		Name:        req.Name,
		Description: sql.NullString{String: req.Description, Valid: req.Description != ""},
		Price:       price,
	}

	created, err := s.items.Create(ctx, item)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, toStatusError(err)
	}

	s.logger.Info(ctx, "created item", "item_id", created.ID)
	return &pb.CreateItemResponse{Item: itemToProto(created)}, nil
}

func (s *GRPCServer) UpdateItem(ctx context.Context, req *pb.UpdateItemRequest) (*pb.UpdateItemResponse, error) {

	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	item := &models.Item{
		ID:          req.Id,
		Name:        req.Name,
		Description: sql.NullString{String: req.Description, Valid: req.Description != ""},
		Price:       price,
	}

	updated, err := s.items.Update(ctx, item)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &pb.UpdateItemResponse{Item: itemToProto(updated)}, nil
}

func (s *GRPCServer) DeleteItem(ctx context.Context, req *pb.DeleteItemRequest) (*pb.DeleteItemResponse, error) {

	if err := s.items.Delete(ctx, req.Id); err != nil {
		return nil, toStatusError(err)
	}

	return &pb.DeleteItemResponse{}, nil
}

func (s *GRPCServer) SyncItemPrice(ctx context.Context, req *pb.SyncItemPriceRequest) (*pb.SyncItemPriceResponse, error) {

	taskID, err := s.items.EnqueueItemSync(req.Id)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, toStatusError(err)
	}

	return &pb.SyncItemPriceResponse{
		Message: fmt.Sprintf("price sync triggered for item %d", req.Id),
		TaskId:  taskID,
	}, nil
}

func (s *GRPCServer) SyncAllPrices(ctx context.Context, req *pb.SyncAllPricesRequest) (*pb.SyncAllPricesResponse, error) {

	taskID, err := s.items.EnqueueFullSync()
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, toStatusError(err)
	}

	return &pb.SyncAllPricesResponse{
		Message: "price sync triggered for all items",
		TaskId:  taskID,
	}, nil
}

func (s *GRPCServer) GetTaskStatus(ctx context.Context, req *pb.GetTaskStatusRequest) (*pb.GetTaskStatusResponse, error) {

	st, ok := s.tasks.Status(req.TaskId)
	if !ok {
		return nil, status.Error(codes.NotFound, "unknown task handle")
	}

	return &pb.GetTaskStatusResponse{
		TaskId: req.TaskId,
		Status: string(st.Status),
		Result: st.Result,
	}, nil
}
