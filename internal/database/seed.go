package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"hireflow/internal/models"
	"hireflow/internal/storage"
	"hireflow/internal/transport/dto"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

func strPtr(s string) *string { return &s }

// SeedDemoData inserts a demo job seeker, a demo company and a handful
// of listings when the users table is empty. No-op otherwise.
func SeedDemoData(ctx context.Context, pool *pgxpool.Pool, users storage.UserRepository, jobs storage.JobRepository) error {
	var count int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		log.Println("Database already seeded. Skipping.")
		return nil
	}

	log.Println("Seeding demo data...")

	hash, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	seeker, err := users.Create(ctx, "Alex Rivera", "jobseeker@demo.com", string(hash), models.RoleJobSeeker, nil)
	if err != nil {
		return fmt.Errorf("failed to seed job seeker: %w", err)
	}
	if _, err := users.UpdateProfile(ctx, &dto.UpdateProfileRequest{
		UserID:   seeker.ID,
		Title:    strPtr("Full Stack Developer"),
		Bio:      strPtr("Passionate developer with 3 years of experience in React and Node.js."),
		Location: strPtr("San Francisco, CA"),
		Phone:    strPtr("+1 (555) 000-0000"),
		Skills:   &[]string{"React", "Node.js", "TypeScript", "PostgreSQL"},
	}); err != nil {
		return fmt.Errorf("failed to fill job seeker profile: %w", err)
	}

	company, err := users.Create(ctx, "TechCorp HR", "company@demo.com", string(hash), models.RoleCompany, strPtr("TechCorp Inc."))
	if err != nil {
		return fmt.Errorf("failed to seed company: %w", err)
	}
	if _, err := users.UpdateProfile(ctx, &dto.UpdateProfileRequest{
		UserID:             company.ID,
		Location:           strPtr("New York, NY"),
		Industry:           strPtr("Technology"),
		CompanySize:        strPtr("100-500"),
		Website:            strPtr("https://techcorp.example.com"),
		CompanyDescription: strPtr("We build innovative software solutions for businesses worldwide."),
	}); err != nil {
		return fmt.Errorf("failed to fill company profile: %w", err)
	}

	demoJobs := []struct {
		req      dto.CreateJobRequest
		deadline time.Duration
	}{
		{
			req: dto.CreateJobRequest{
				Title:        "Senior React Developer",
				Description:  "We are looking for an experienced React developer to join our growing team.\n\nResponsibilities:\n- Build and maintain React applications\n- Collaborate with the design team\n- Code reviews and mentoring\n- Performance optimization",
				Requirements: "React, TypeScript, Redux, REST APIs, 4+ years experience",
				Location:     "New York, NY",
				Salary:       "$120,000 - $160,000",
				Type:         models.JobTypeFullTime,
				Level:        models.JobLevelSenior,
				Category:     models.JobCategoryEngineering,
				Skills:       []string{"React", "TypeScript", "Redux", "Node.js", "GraphQL"},
				Benefits:     []string{"Health Insurance", "Remote Options", "401k", "Stock Options"},
			},
			deadline: 30 * 24 * time.Hour,
		},
		{
			req: dto.CreateJobRequest{
				Title:        "UX/UI Designer",
				Description:  "Join our product design team to craft beautiful and intuitive user experiences.\n\nResponsibilities:\n- Create wireframes, prototypes, and high-fidelity designs\n- Conduct user research\n- Maintain design systems",
				Requirements: "Figma, User Research, Design Systems, 3+ years experience",
				Location:     "Remote",
				Salary:       "$90,000 - $120,000",
				Type:         models.JobTypeRemote,
				Level:        models.JobLevelMid,
				Category:     models.JobCategoryDesign,
				Skills:       []string{"Figma", "Prototyping", "User Research", "Design Systems", "CSS"},
				Benefits:     []string{"Fully Remote", "Health Insurance", "Learning Budget", "Flexible Hours"},
			},
			deadline: 25 * 24 * time.Hour,
		},
		{
			req: dto.CreateJobRequest{
				Title:        "Backend Engineer (Node.js)",
				Description:  "We need a talented backend engineer to build robust APIs and microservices.\n\nResponsibilities:\n- Design and build RESTful and GraphQL APIs\n- Optimize database queries\n- Implement security best practices",
				Requirements: "Node.js, PostgreSQL, Docker, AWS, 3+ years experience",
				Location:     "San Francisco, CA",
				Salary:       "$110,000 - $145,000",
				Type:         models.JobTypeFullTime,
				Level:        models.JobLevelMid,
				Category:     models.JobCategoryEngineering,
				Skills:       []string{"Node.js", "PostgreSQL", "Docker", "AWS", "Redis"},
				Benefits:     []string{"Health Insurance", "Dental", "401k", "Gym Membership"},
			},
			deadline: 21 * 24 * time.Hour,
		},
		{
			req: dto.CreateJobRequest{
				Title:        "Data Scientist",
				Description:  "Looking for a data scientist to help us make data-driven decisions and build ML models.",
				Requirements: "Python, Machine Learning, SQL, Statistics, 2+ years experience",
				Location:     "Austin, TX",
				Salary:       "$100,000 - $140,000",
				Type:         models.JobTypeFullTime,
				Level:        models.JobLevelMid,
				Category:     models.JobCategoryData,
				Skills:       []string{"Python", "ML", "SQL", "TensorFlow", "Pandas"},
				Benefits:     []string{"Health Insurance", "Remote Options", "401k"},
			},
			deadline: 14 * 24 * time.Hour,
		},
	}

	for i := range demoJobs {
		demoJobs[i].req.CompanyID = company.ID
		if _, err := jobs.Create(ctx, &demoJobs[i].req, time.Now().Add(demoJobs[i].deadline), models.JobStatusActive); err != nil {
			return fmt.Errorf("failed to seed job %q: %w", demoJobs[i].req.Title, err)
		}
	}

	log.Println("Demo data seeded successfully!")
	log.Println("   - Job Seeker: jobseeker@demo.com / demo123")
	log.Println("   - Company:    company@demo.com / demo123")
	log.Printf("   - %d jobs created", len(demoJobs))
	return nil
}
