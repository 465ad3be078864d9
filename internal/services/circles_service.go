package services

import (
	"context"
	"net/url"

	"odyssweb/internal/apiclient"
	"odyssweb/internal/domain"
	"odyssweb/internal/utils"
)

// CirclesService covers circle discovery, membership and the waitlist
// grouping tools.
type CirclesService struct {
	API       *apiclient.Client
	RequestID string
}

type CircleSearchParams struct {
	Departure   string
	Destination string
}

type WaitlistGroup struct {
	GroupID     string `json:"group_id"`
	MemberCount int    `json:"member_count"`
	Members     []struct {
		ID        string `json:"id"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
	} `json:"members"`
}

type WaitlistCirclesResponse struct {
	Message        string          `json:"message"`
	CirclesCreated []domain.Circle `json:"circles_created"`
}

func (s CirclesService) AllCircles(ctx context.Context) ([]domain.Circle, error) {
	var circles domain.CircleList
	if err := s.API.Get(ctx, "/users/circles", nil, &circles); err != nil {
		return nil, err
	}
	return circles, nil
}

func (s CirclesService) MyCircles(ctx context.Context) ([]domain.Circle, error) {
	var circles domain.CircleList
	if err := s.API.Get(ctx, "/users/my_circles", nil, &circles); err != nil {
		return nil, err
	}
	return circles, nil
}

func (s CirclesService) CircleDetails(ctx context.Context, circleID string) (domain.Circle, error) {
	if circleID == "" {
		return domain.Circle{}, domain.ValidationError{Field: "circle_id", Msg: "circle id is required"}
	}
	var circle domain.Circle
	err := s.API.Get(ctx, "/users/circles/"+circleID, nil, &circle)
	return circle, err
}

func (s CirclesService) CreateCircle(ctx context.Context, data domain.CreateCircleData) (domain.Circle, error) {
	switch {
	case utils.TrimOrEmpty(data.Name) == "":
		return domain.Circle{}, domain.ValidationError{Field: "name", Msg: "circle name is required"}
	case utils.TrimOrEmpty(data.Departure) == "":
		return domain.Circle{}, domain.ValidationError{Field: "departure", Msg: "departure is required"}
	case utils.TrimOrEmpty(data.Destination) == "":
		return domain.Circle{}, domain.ValidationError{Field: "destination", Msg: "destination is required"}
	}
	var circle domain.Circle
	if err := s.API.Post(ctx, "/users/circle", data, &circle); err != nil {
		return domain.Circle{}, err
	}
	utils.LogEvent(s.RequestID, "circles", "create", "circle_id="+circle.ID)
	return circle, nil
}

func (s CirclesService) JoinCircle(ctx context.Context, circleID string) (MessageResponse, error) {
	if circleID == "" {
		return MessageResponse{}, domain.ValidationError{Field: "circle_id", Msg: "circle id is required"}
	}
	var resp MessageResponse
	if err := s.API.Post(ctx, "/users/circle/"+circleID+"/join", nil, &resp); err != nil {
		return MessageResponse{}, err
	}
	utils.LogEvent(s.RequestID, "circles", "join", "circle_id="+circleID)
	return resp, nil
}

func (s CirclesService) SearchCircles(ctx context.Context, params CircleSearchParams) ([]domain.Circle, error) {
	query := url.Values{}
	if v := utils.TrimOrEmpty(params.Departure); v != "" {
		query.Set("departure", v)
	}
	if v := utils.TrimOrEmpty(params.Destination); v != "" {
		query.Set("destination", v)
	}
	var circles domain.CircleList
	if err := s.API.Get(ctx, "/users/circles/search", query, &circles); err != nil {
		return nil, err
	}
	return circles, nil
}

func (s CirclesService) RecommendedCircles(ctx context.Context) ([]domain.Circle, error) {
	var circles domain.CircleList
	if err := s.API.Get(ctx, "/users/circles/recommended", nil, &circles); err != nil {
		return nil, err
	}
	return circles, nil
}

func (s CirclesService) AutoGroupCircles(ctx context.Context) (MessageResponse, error) {
	var resp MessageResponse
	err := s.API.Post(ctx, "/users/auto_group_circles", nil, &resp)
	return resp, err
}

func (s CirclesService) PreviewWaitlistGroups(ctx context.Context) ([]WaitlistGroup, error) {
	var groups []WaitlistGroup
	err := s.API.Get(ctx, "/users/circles/preview-waitlist", nil, &groups)
	return groups, err
}

func (s CirclesService) CreateCirclesFromWaitlist(ctx context.Context) (WaitlistCirclesResponse, error) {
	var resp WaitlistCirclesResponse
	if err := s.API.Post(ctx, "/users/circles/create-from-waitlist", nil, &resp); err != nil {
		return WaitlistCirclesResponse{}, err
	}
	utils.LogEvent(s.RequestID, "circles", "create_from_waitlist", resp.Message)
	return resp, nil
}
