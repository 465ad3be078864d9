package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"odyssweb/internal/apiclient"
	"odyssweb/internal/domain"
	"odyssweb/internal/utils"
)

// UsersService covers the profile endpoints plus the company catalog reads
// the trip wizard depends on.
type UsersService struct {
	API       *apiclient.Client
	RequestID string
}

type UpdateProfileData struct {
	FirstName  *string `json:"first_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
	Nickname   *string `json:"nickname,omitempty"`
	Bio        *string `json:"bio,omitempty"`
	Avatar     *string `json:"avatar,omitempty"`
	IntroVideo *string `json:"intro_video,omitempty"`
	X          *string `json:"x,omitempty"`
	FB         *string `json:"fb,omitempty"`
	TikTok     *string `json:"tiktok,omitempty"`
	Insta      *string `json:"insta,omitempty"`
}

type FileUploadResponse struct {
	FileURL string `json:"file_url"`
	Message string `json:"message"`
}

const (
	UploadTypeAvatar     = "avatar"
	UploadTypeIntroVideo = "intro_video"
)

func (s UsersService) MyProfile(ctx context.Context) (domain.UserProfile, error) {
	var profile domain.UserProfile
	err := s.API.Get(ctx, "/users/me", nil, &profile)
	return profile, err
}

func (s UsersService) UpdateMyProfile(ctx context.Context, data UpdateProfileData) (domain.UserProfile, error) {
	var profile domain.UserProfile
	if err := s.API.Put(ctx, "/users/me", data, &profile); err != nil {
		return domain.UserProfile{}, err
	}
	utils.LogEvent(s.RequestID, "users", "update_profile", "user_id="+profile.ID)
	return profile, nil
}

// UploadFile sends an avatar or intro video as a multipart form. fileType
// must be one of the UploadType constants.
func (s UsersService) UploadFile(ctx context.Context, filename, fileType string, content io.Reader) (FileUploadResponse, error) {
	if fileType != UploadTypeAvatar && fileType != UploadTypeIntroVideo {
		return FileUploadResponse{}, domain.ValidationError{Field: "type", Msg: "unsupported upload type"}
	}
	if filename == "" {
		return FileUploadResponse{}, domain.ValidationError{Field: "file", Msg: "filename is required"}
	}

	var resp FileUploadResponse
	err := s.API.PostMultipart(ctx, "/users/upload-file", func(w *multipart.Writer) error {
		part, err := w.CreateFormFile("file", filename)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, content); err != nil {
			return err
		}
		return w.WriteField("type", fileType)
	}, &resp)
	if err != nil {
		return FileUploadResponse{}, err
	}
	utils.LogEvent(s.RequestID, "users", "upload_file", fmt.Sprintf("type=%s name=%s", fileType, filename))
	return resp, nil
}

func (s UsersService) ListUsers(ctx context.Context) ([]domain.UserProfile, error) {
	var users []domain.UserProfile
	err := s.API.Get(ctx, "/users/", nil, &users)
	return users, err
}

func (s UsersService) AllCompanies(ctx context.Context) ([]domain.Company, error) {
	var companies []domain.Company
	err := s.API.Get(ctx, "/users/companies", nil, &companies)
	return companies, err
}

func (s UsersService) AllCompanyRoutes(ctx context.Context) ([]domain.CompanyRoute, error) {
	var routes []domain.CompanyRoute
	err := s.API.Get(ctx, "/users/company_routes", nil, &routes)
	return routes, err
}

func (s UsersService) AllCompanyVehicles(ctx context.Context) ([]domain.CompanyVehicle, error) {
	var vehicles []domain.CompanyVehicle
	err := s.API.Get(ctx, "/users/company_vehicles", nil, &vehicles)
	return vehicles, err
}
