package graph

import (
	"learnhub/models"
	"learnhub/service"

	"github.com/graphql-go/graphql"
)

var quizType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Quiz",
	Fields: graphql.Fields{
		"question": &graphql.Field{Type: graphql.String},
		"options":  &graphql.Field{Type: graphql.NewList(graphql.String)},
		// Visible to any caller, matching the original system
		"answer": &graphql.Field{Type: graphql.String},
	},
})

var progressType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Progress",
	Fields: graphql.Fields{
		"courseId":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"completedLessons": &graphql.Field{Type: graphql.NewList(graphql.String)},
	},
})

var courseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Course",
	Fields: graphql.Fields{
		"id":               &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"title":            &graphql.Field{Type: graphql.String},
		"description":      &graphql.Field{Type: graphql.String},
		"category":         &graphql.Field{Type: graphql.String},
		"lessons":          &graphql.Field{Type: graphql.NewList(graphql.String)},
		"quizzes":          &graphql.Field{Type: graphql.NewList(quizType)},
		"enrolledStudents": &graphql.Field{Type: graphql.NewList(graphql.ID)},
	},
})

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":              &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":            &graphql.Field{Type: graphql.String},
		"email":           &graphql.Field{Type: graphql.String},
		"enrolledCourses": &graphql.Field{Type: graphql.NewList(graphql.ID)},
		"progress":        &graphql.Field{Type: graphql.NewList(progressType)},
	},
})

var authDataType = graphql.NewObject(graphql.ObjectConfig{
	Name: "AuthData",
	Fields: graphql.Fields{
		"token":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"userId": &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
	},
})

var quizInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "QuizInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"question": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"options":  &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.String)},
		"answer":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

// NewSchema wires the GraphQL surface to the services. Auth state travels in
// the resolver context; failures come back as per-field errors so sibling
// fields in the same request still resolve.
func NewSchema(auth *service.AuthService, courses *service.CourseService) (graphql.Schema, error) {
	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"courses": &graphql.Field{
				Type: graphql.NewList(courseType),
				Args: graphql.FieldConfigArgument{
					"category": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					category, _ := p.Args["category"].(string)
					return courses.Courses(category)
				},
			},
			"myCourses": &graphql.Field{
				Type: graphql.NewList(courseType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return courses.MyCourses(p.Context)
				},
			},
			"myProgress": &graphql.Field{
				Type: progressType,
				Args: graphql.FieldConfigArgument{
					"courseId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					courseID, _ := p.Args["courseId"].(string)
					return courses.MyProgress(p.Context, courseID)
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"register": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"name":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					name, _ := p.Args["name"].(string)
					email, _ := p.Args["email"].(string)
					password, _ := p.Args["password"].(string)
					return auth.Register(service.RegisterInput{
						Name:     name,
						Email:    email,
						Password: password,
					})
				},
			},
			"login": &graphql.Field{
				Type: authDataType,
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					email, _ := p.Args["email"].(string)
					password, _ := p.Args["password"].(string)
					return auth.Login(email, password)
				},
			},
			"enroll": &graphql.Field{
				Type: courseType,
				Args: graphql.FieldConfigArgument{
					"courseId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					courseID, _ := p.Args["courseId"].(string)
					return courses.Enroll(p.Context, courseID)
				},
			},
			"completeLesson": &graphql.Field{
				Type: progressType,
				Args: graphql.FieldConfigArgument{
					"courseId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"lesson":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					courseID, _ := p.Args["courseId"].(string)
					lesson, _ := p.Args["lesson"].(string)
					return courses.CompleteLesson(p.Context, courseID, lesson)
				},
			},
			"addCourse": &graphql.Field{
				Type: courseType,
				Args: graphql.FieldConfigArgument{
					"title":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"description": &graphql.ArgumentConfig{Type: graphql.String},
					"category":    &graphql.ArgumentConfig{Type: graphql.String},
					"lessons":     &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
					"quizzes":     &graphql.ArgumentConfig{Type: graphql.NewList(quizInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					course := models.Course{
						Title:       argString(p.Args, "title"),
						Description: argString(p.Args, "description"),
						Category:    argString(p.Args, "category"),
						Lessons:     argStringList(p.Args, "lessons"),
						Quizzes:     argQuizList(p.Args, "quizzes"),
					}
					return courses.AddCourse(p.Context, course)
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

func argString(args map[string]interface{}, key string) string {
	value, _ := args[key].(string)
	return value
}

func argStringList(args map[string]interface{}, key string) []string {
	raw, ok := args[key].([]interface{})
	if !ok {
		return nil
	}
	list := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			list = append(list, s)
		}
	}
	return list
}

func argQuizList(args map[string]interface{}, key string) []models.Quiz {
	raw, ok := args[key].([]interface{})
	if !ok {
		return nil
	}
	quizzes := make([]models.Quiz, 0, len(raw))
	for _, item := range raw {
		fields, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		quizzes = append(quizzes, models.Quiz{
			Question: argString(fields, "question"),
			Options:  argStringList(fields, "options"),
			Answer:   argString(fields, "answer"),
		})
	}
	return quizzes
}
