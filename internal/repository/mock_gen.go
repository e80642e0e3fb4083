// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./organization.go -destination=../mocks/mock_organization_repository.go -package=mocks OrganizationRepositoryIface
//go:generate mockgen -source=./project.go -destination=../mocks/mock_project_repository.go -package=mocks ProjectRepositoryIface
//go:generate mockgen -source=./referee.go -destination=../mocks/mock_referee_repository.go -package=mocks RefereeRepositoryIface
//go:generate mockgen -source=./report.go -destination=../mocks/mock_report_repository.go -package=mocks ReportRepositoryIface
//go:generate mockgen -source=./prompt.go -destination=../mocks/mock_prompt_repository.go -package=mocks PromptRepositoryIface
