package graph

import (
	"errors"

	"github.com/graphql-go/graphql"

	"jobboard-backend/internal/applicants"
	"jobboard-backend/internal/applications"
	"jobboard-backend/internal/employers"
	"jobboard-backend/internal/jobs"
)

// Resolver holds the services the schema resolves against.
type Resolver struct {
	Applicants   *applicants.Service
	Employers    *employers.Service
	Jobs         *jobs.Service
	Applications applications.Repo
}

// NewSchema builds the GraphQL schema: queries applicant, employer, jobCount,
// jobs, applicationExists, resumeExists and mutations createJob,
// updateApplicant, updateEmployer. Single-entity lookups resolve missing
// records to null, never to an error.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	resumeType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Resume",
		Fields: graphql.Fields{
			"originalName": &graphql.Field{Type: graphql.String},
			"mimeType":     &graphql.Field{Type: graphql.String},
			"sizeBytes":    &graphql.Field{Type: graphql.Int},
		},
	})

	applicantType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Applicant",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.ID},
			"firstName": &graphql.Field{Type: graphql.String},
			"lastName":  &graphql.Field{Type: graphql.String},
			"email":     &graphql.Field{Type: graphql.String},
			"resume":    &graphql.Field{Type: resumeType},
		},
	})

	employerType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Employer",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.ID},
			"email":       &graphql.Field{Type: graphql.String},
			"companyName": &graphql.Field{Type: graphql.String},
		},
	})

	jobType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Job",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.ID},
			"title":       &graphql.Field{Type: graphql.String},
			"companyName": &graphql.Field{Type: graphql.String},
			"employerId":  &graphql.Field{Type: graphql.ID},
			"salary":      &graphql.Field{Type: graphql.Int},
			"currency":    &graphql.Field{Type: graphql.String},
			"location":    &graphql.Field{Type: graphql.String},
			"desc":        &graphql.Field{Type: graphql.String},
			"applied":     &graphql.Field{Type: graphql.Boolean},
		},
	})

	jobsCountType := graphql.NewObject(graphql.ObjectConfig{
		Name: "JobsCount",
		Fields: graphql.Fields{
			"value": &graphql.Field{Type: graphql.Int},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "RootQueryType",
		Fields: graphql.Fields{
			"applicant": &graphql.Field{
				Type: applicantType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: r.resolveApplicant,
			},
			"employer": &graphql.Field{
				Type: employerType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: r.resolveEmployer,
			},
			"jobCount": &graphql.Field{
				Type: jobsCountType,
				Args: graphql.FieldConfigArgument{
					"filter": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveJobCount,
			},
			"jobs": &graphql.Field{
				Type: graphql.NewList(jobType),
				Args: graphql.FieldConfigArgument{
					"applicantId": &graphql.ArgumentConfig{Type: graphql.ID},
					"first":       &graphql.ArgumentConfig{Type: graphql.Int},
					"offset":      &graphql.ArgumentConfig{Type: graphql.Int},
					"filter":      &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveJobs,
			},
			"applicationExists": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"applicantId": &graphql.ArgumentConfig{Type: graphql.ID},
					"jobId":       &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: r.resolveApplicationExists,
			},
			"resumeExists": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: r.resolveResumeExists,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createJob": &graphql.Field{
				Type: jobType,
				Args: graphql.FieldConfigArgument{
					"title":       &graphql.ArgumentConfig{Type: graphql.String},
					"companyName": &graphql.ArgumentConfig{Type: graphql.String},
					"salary":      &graphql.ArgumentConfig{Type: graphql.Int},
					"currency":    &graphql.ArgumentConfig{Type: graphql.String},
					"location":    &graphql.ArgumentConfig{Type: graphql.String},
					"desc":        &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveCreateJob,
			},
			"updateApplicant": &graphql.Field{
				Type: applicantType,
				Args: graphql.FieldConfigArgument{
					"id":        &graphql.ArgumentConfig{Type: graphql.ID},
					"firstName": &graphql.ArgumentConfig{Type: graphql.String},
					"lastName":  &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveUpdateApplicant,
			},
			"updateEmployer": &graphql.Field{
				Type: employerType,
				Args: graphql.FieldConfigArgument{
					"id":          &graphql.ArgumentConfig{Type: graphql.ID},
					"companyName": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveUpdateEmployer,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

func (r *Resolver) resolveApplicant(p graphql.ResolveParams) (interface{}, error) {
	id, ok := argString(p.Args, "id")
	if !ok {
		return nil, nil
	}
	applicant, err := r.Applicants.GetByID(p.Context, id)
	if err != nil {
		if errors.Is(err, applicants.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return applicantResponse(applicant), nil
}

func (r *Resolver) resolveEmployer(p graphql.ResolveParams) (interface{}, error) {
	id, ok := argString(p.Args, "id")
	if !ok {
		return nil, nil
	}
	employer, err := r.Employers.GetByID(p.Context, id)
	if err != nil {
		if errors.Is(err, employers.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return employerResponse(employer), nil
}

func (r *Resolver) resolveJobCount(p graphql.ResolveParams) (interface{}, error) {
	filter, _ := argString(p.Args, "filter")
	count, err := r.Jobs.Count(p.Context, filter)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"value": count}, nil
}

func (r *Resolver) resolveJobs(p graphql.ResolveParams) (interface{}, error) {
	applicantID, _ := argString(p.Args, "applicantId")
	filter, _ := argString(p.Args, "filter")
	first := argInt(p.Args, "first", 0)
	offset := argInt(p.Args, "offset", 0)

	list, err := r.Jobs.List(p.Context, filter, first, offset)
	if err != nil {
		return nil, err
	}

	out := make([]map[string]interface{}, 0, len(list))
	for _, job := range list {
		applied := false
		if applicantID != "" {
			applied, err = r.Applications.Exists(p.Context, applicantID, job.ID)
			if err != nil {
				return nil, err
			}
		}
		out = append(out, jobResponse(job, applied))
	}
	return out, nil
}

func (r *Resolver) resolveApplicationExists(p graphql.ResolveParams) (interface{}, error) {
	applicantID, _ := argString(p.Args, "applicantId")
	jobID, _ := argString(p.Args, "jobId")
	if applicantID == "" || jobID == "" {
		return false, nil
	}
	return r.Applications.Exists(p.Context, applicantID, jobID)
}

func (r *Resolver) resolveResumeExists(p graphql.ResolveParams) (interface{}, error) {
	id, ok := argString(p.Args, "id")
	if !ok {
		return nil, nil
	}
	exists, err := r.Applicants.ResumeExists(p.Context, id)
	if err != nil {
		if errors.Is(err, applicants.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return exists, nil
}

func (r *Resolver) resolveCreateJob(p graphql.ResolveParams) (interface{}, error) {
	title, _ := argString(p.Args, "title")
	companyName, _ := argString(p.Args, "companyName")
	currency, _ := argString(p.Args, "currency")
	location, _ := argString(p.Args, "location")
	desc, _ := argString(p.Args, "desc")
	salary := argInt(p.Args, "salary", 0)

	job, err := r.Jobs.Create(p.Context, jobs.CreateParams{
		Title:       title,
		CompanyName: companyName,
		Salary:      salary,
		Currency:    currency,
		Location:    location,
		Desc:        desc,
	})
	if err != nil {
		return nil, err
	}
	return jobResponse(job, false), nil
}

func (r *Resolver) resolveUpdateApplicant(p graphql.ResolveParams) (interface{}, error) {
	id, ok := argString(p.Args, "id")
	if !ok {
		return nil, errors.New("id is required")
	}
	firstName := argStringPtr(p.Args, "firstName")
	lastName := argStringPtr(p.Args, "lastName")

	applicant, err := r.Applicants.Update(p.Context, id, firstName, lastName)
	if err != nil {
		return nil, err
	}
	return applicantResponse(applicant), nil
}

func (r *Resolver) resolveUpdateEmployer(p graphql.ResolveParams) (interface{}, error) {
	id, ok := argString(p.Args, "id")
	if !ok {
		return nil, errors.New("id is required")
	}
	companyName := argStringPtr(p.Args, "companyName")

	employer, err := r.Employers.Update(p.Context, id, companyName)
	if err != nil {
		return nil, err
	}
	return employerResponse(employer), nil
}

func applicantResponse(applicant applicants.Applicant) map[string]interface{} {
	return map[string]interface{}{
		"id":        applicant.ID,
		"firstName": applicant.FirstName,
		"lastName":  applicant.LastName,
		"email":     applicant.Email,
		"resume": map[string]interface{}{
			"originalName": applicant.Resume.OriginalName,
			"mimeType":     applicant.Resume.MimeType,
			"sizeBytes":    int(applicant.Resume.SizeBytes),
		},
	}
}

func employerResponse(employer employers.Employer) map[string]interface{} {
	return map[string]interface{}{
		"id":          employer.ID,
		"email":       employer.Email,
		"companyName": employer.CompanyName,
	}
}

func jobResponse(job jobs.Job, applied bool) map[string]interface{} {
	return map[string]interface{}{
		"id":          job.ID,
		"title":       job.Title,
		"companyName": job.CompanyName,
		"employerId":  job.EmployerID,
		"salary":      job.Salary,
		"currency":    job.Currency,
		"location":    job.Location,
		"desc":        job.Desc,
		"applied":     applied,
	}
}

func argString(args map[string]interface{}, key string) (string, bool) {
	val, ok := args[key]
	if !ok || val == nil {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

func argStringPtr(args map[string]interface{}, key string) *string {
	if s, ok := argString(args, key); ok {
		return &s
	}
	return nil
}

func argInt(args map[string]interface{}, key string, def int) int {
	val, ok := args[key]
	if !ok || val == nil {
		return def
	}
	if n, ok := val.(int); ok {
		return n
	}
	return def
}
