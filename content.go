package main

// DefaultProfile returns the site's authored content. Each call builds a
// fresh value, so callers never share slices.
func DefaultProfile() Profile {
	return Profile{
		Name:  "Shayan Darabi",
		Title: "Digital CV | Shayan Darabi",
		Summary: "Enthusiastic and analytical data scientist with a strong foundation in statistical modeling, " +
			"Python programming, and data analysis. I am seeking to leverage my skills and expertise to contribute " +
			"to a dynamic team and tackle complex business challenges through data-driven insights.",
		Email: "darabishayan0@gmail.com",
		Social: SocialLinks{
			{Label: "LinkedIn", URL: "https://www.linkedin.com/in/darabi-shayan/"},
			{Label: "GitHub", URL: "https://github.com/ShayanDarabi"},
		},
		Experience: []Experience{
			{
				Role:            "Data Analyst",
				Organization:    "Parsian Quality and Productivity Research Center",
				OrganizationURL: "https://pqprc.ac.ir/",
				Kind:            "Internship",
				Period:          DateRange{Start: "Jun 2023", End: "Aug 2023", Location: "Tehran, Tehran Province, Iran - Remote"},
				Bullets: []string{
					"Exploring the realm of data analysis and working as a machine learning researcher in the field of " +
						"Remaining Useful Life (RUL) prediction for rollers in the hot and cold rolling process under the " +
						"supervision of [Dr. Abbas Saghaei](https://www.linkedin.com/in/abbas-saghaei-01135044/).",
					"Cleaning and aggregating complex datasets using Python packages like Pandas and Numpy to ensure data quality and integrity.",
					"Utilizing Matplotlib and Seaborn to create insightful data visualizations like depicting P control charts. " +
						"Developing informative dashboards and doing EDA by using Pandas Profiling to provide actionable insights.",
					"Learning and exploring the implementation of metaheuristics optimization techniques in Python to solve " +
						"complex optimization problems like VRP.",
				},
			},
			{
				Role:         "Teaching Assistant in Programming Fundamentals (C++)",
				Organization: "K. N. Toosi University",
				Period:       DateRange{Start: "Oct 2022", End: "Jan 2023", Location: "Tehran Province, Iran"},
				Bullets: []string{
					"Provided individual and group support to students, offering guidance and clarifications on programming " +
						"concepts, syntax, and problem-solving techniques.",
					"Assisted in developing and updating course materials, assignments, and programming exercises.",
					"Administered and graded assignments, quizzes, and exams.",
					"Assisted students with technical issues, debugging errors, and resolving programming-related challenges.",
				},
			},
		},
		Skills: []SkillCategory{
			{Label: "ML and Statistical Modeling", Icon: "📚", Items: []string{"Logistic Regression", "Linear Regression", "Decision Trees"}},
			{Label: "Python", Icon: "🐍", Items: []string{"Scikit-learn", "Pandas", "Numpy"}},
			{Label: "SQL", Icon: "❔"},
			{Label: "Data Visualization", Icon: "📊", Items: []string{"Matplotlib", "Seaborn"}},
			{Label: "Mathematics", Icon: "📐", Items: []string{"Statistics", "Linear Algebra"}},
			{Label: "Familiarity With Version Control Systems Like Git", Icon: "🔰"},
			{Label: "Teamwork", Icon: "🙌"},
			{Label: "Self-learning", Icon: "📖"},
			{Label: "Problem-solving", Icon: "🔑"},
			{Label: "Active Learning", Icon: "🏃"},
		},
		Certifications: []Certification{
			{Title: "Machine Learning", URL: "https://www.coursera.org/account/accomplishments/certificate/ENYQR9YR3S8M"},
			{Title: "Supervised Machine Learning: Regression and Classification", URL: "https://www.coursera.org/account/accomplishments/certificate/4PW9GMB764JT"},
			{Title: "Neural Networks and Deep Learning", URL: "https://www.coursera.org/account/accomplishments/certificate/BPGK6DVN9MGF"},
			{Title: "Advanced Learning Algorithms", URL: "https://www.coursera.org/account/accomplishments/certificate/PM9NPVSSXCS2"},
			{Title: "Advanced Python Programming and Object-Oriented Thinking Course", URL: "https://quera.org/certificate/fKoLCtfq/"},
			{Title: "Understanding and Visualizing Data with Python", URL: "https://www.coursera.org/account/accomplishments/certificate/UR9CPFQKDWU9"},
			{Title: "Excel Skills for Business Specialization", URL: "https://www.coursera.org/account/accomplishments/specialization/certificate/AQWTP4R4RJJW"},
			{Title: "Data Analysis with Python", URL: "https://freecodecamp.org/certification/ShayanDarabi/data-analysis-with-python-v7"},
			{Title: "Introduction to HTML5", URL: "https://www.coursera.org/account/accomplishments/certificate/ZTTPBRKUSHHL"},
			{Title: "Microsoft SQL Server Development for Everyone"},
		},
		Projects: []Project{
			{
				Title: "Solving a Capacitated Vehicle Routing Problem (CVRP)",
				Paragraphs: []string{
					"Navigating a complex challenge, I delved into the intricacies of the Capacitated Vehicle Routing Problem (CVRP). " +
						"With 41 workers and a fleet of 17 vehicles at hand, I harnessed the power of " +
						"[Google OR-Tools](https://developers.google.com/optimization) to optimize routes while adhering to capacity constraints.",
					"Every distance and time matrix was meticulously calculated, forming a sturdy foundation for the optimization journey. " +
						"Careful allocation of vehicles, considering capacities, ensured smooth operations.",
					"As the optimal solution emerged, I visualized each vehicle's route using " +
						"[Folium](https://python-visualization.github.io/folium) and the " +
						"[Open Route Source API](https://openrouteservice.org). This tangible representation brought logistical " +
						"efficiency to life on the map, translating intricate plans into actionable reality.",
					"In essence, my expertise fused mathematics, data analysis, and visualization to conquer the CVRP, exemplifying " +
						"a dedication to practical solutions for complex real-world puzzles.",
				},
				Links: []Link{
					{Label: "Google OR-Tools", URL: "https://developers.google.com/optimization"},
					{Label: "Folium", URL: "https://python-visualization.github.io/folium"},
					{Label: "OpenRouteService", URL: "https://openrouteservice.org"},
				},
				Snippet: &Snippet{Language: "python", Code: cvrpSnippet},
			},
			{
				Title: "Several Projects About Data Aggregation, Cleaning, and Visualization",
				Paragraphs: []string{
					"I excel at refining and combining intricate datasets using Pandas and Numpy, ensuring data integrity. " +
						"Leveraging Matplotlib and Seaborn, I craft enlightening visuals, including P control charts. I create " +
						"informative dashboards, and with Pandas Profiling, I extract actionable insights from exploratory data " +
						"analysis. My focus is on turning complexity into clarity.",
				},
			},
			{
				Title: "Process Mining",
				Paragraphs: []string{
					"Using the dataset at my disposal, I took a close look at a company's operations using a helpful tool called " +
						"[pm4py](https://pm4py.fit.fraunhofer.de), a popular library in Python for process mining. After getting " +
						"the data in shape, I let pm4py work its magic. It revealed how things flowed, pinpointed bottlenecks, and " +
						"made sure the actual processes matched the plan.",
				},
				Links: []Link{{Label: "pm4py", URL: "https://pm4py.fit.fraunhofer.de"}},
			},
			{
				Title: "Digital Résumé",
				Paragraphs: []string{
					"I've crafted this digital résumé as a small web app that renders my profile, projects and résumé " +
						"download from a single content model.",
					"One of the traits that I like the most in myself is that I love learning and building new stuff, and as a " +
						"data scientist I plan to build many data apps that deliver insightful information to team members and " +
						"stakeholders and are easy to work and play with.",
				},
			},
			{
				Title: "File Organizer: Simplifying Your Directory Chaos",
				URL:   "https://github.com/ShayanDarabi/File-Handling",
				Paragraphs: []string{
					"I embarked on a quest to declutter my files, and the result is my own Python tool. This nifty script swiftly " +
						"organizes my images, documents, videos, and music, turning chaos into harmony. No more scavenger hunts for " +
						"files: I just let it work its magic. It's simplicity at its best, keeping my digital world neat and tidy.",
				},
			},
		},
	}
}

const cvrpSnippet = `import time
import requests
import pandas as pd
import folium
from ortools.constraint_solver import routing_enums_pb2
from ortools.constraint_solver import pywrapcp

# Load data from Excel
data = pd.read_excel('Routing problem - Raw Data - V2 .xlsx', index_col='Code', sheet_name='distance')
distance_matrix = [data.iloc[i].values.tolist() for i in range(45)]

# Define API URL for OpenRouteService
api_url = "https://api.openrouteservice.org/v2/directions/driving-car"

def create_data_model():
    #Stores the data for the problem.
    data = {}
    data['distance_matrix'] = distance_matrix
    data['demands'] = [0, 1, 1, 0] + [1] * 41
    data['vehicle_capacities'] = [5, 5] + [4] * 15
    data['num_vehicles'] = 17
    data['starts'] = [1, 2] + [3] * 15
    data['ends'] = [0] * 17
    return data

def print_solution(data, manager, routing, solution):
    #Prints solution on console.
    print(f'Objective: {solution.ObjectiveValue()}')
    total_distance = 0
    total_load = 0
    for vehicle_id in range(data['num_vehicles']):
        index = routing.Start(vehicle_id)
        route_distance = 0
        route_load = 0
        while not routing.IsEnd(index):
            node_index = manager.IndexToNode(index)
            route_load += data['demands'][node_index]
            route_distance += routing.GetArcCostForVehicle(index, solution.Value(routing.NextVar(index)), vehicle_id)
            index = solution.Value(routing.NextVar(index))
        total_distance += route_distance
        total_load += route_load
    print(f'Total distance of all routes: {total_distance} km')
    print(f'Total load of all routes: {total_load}')

def main():
    #Solve the CVRP problem.
    data_model = create_data_model()
    manager = pywrapcp.RoutingIndexManager(len(data_model['distance_matrix']), data_model['num_vehicles'], data_model['starts'], data_model['ends'])
    routing = pywrapcp.RoutingModel(manager)

    def distance_callback(from_index, to_index):
        return data_model['distance_matrix'][manager.IndexToNode(from_index)][manager.IndexToNode(to_index)]

    def demand_callback(from_index):
        return data_model['demands'][manager.IndexToNode(from_index)]

    transit_callback_index = routing.RegisterTransitCallback(distance_callback)
    routing.SetArcCostEvaluatorOfAllVehicles(transit_callback_index)

    demand_callback_index = routing.RegisterUnaryTransitCallback(demand_callback)
    routing.AddDimensionWithVehicleCapacity(demand_callback_index, 0, data_model['vehicle_capacities'], True, 'Capacity')

    search_parameters = pywrapcp.DefaultRoutingSearchParameters()
    search_parameters.first_solution_strategy = routing_enums_pb2.FirstSolutionStrategy.PATH_CHEAPEST_ARC
    search_parameters.local_search_metaheuristic = routing_enums_pb2.LocalSearchMetaheuristic.GUIDED_LOCAL_SEARCH
    search_parameters.time_limit.FromSeconds(1)

    solution = routing.SolveWithParameters(search_parameters)
    if solution:
        print_solution(data_model, manager, routing, solution)

def draw_route(m, points):
    # Calculate routes between points using OpenRouteService API
    for start_point, end_point in zip(points, points[1:]):
        params = {
            "api_key": "YOUR_OPENROUTESERVICE_API_KEY",
            "start": f"{start_point[1]},{start_point[0]}",
            "end": f"{end_point[1]},{end_point[0]}"
        }
        route_data = requests.get(api_url, params=params).json()
        route_coordinates = [
            (coord[1], coord[0]) for coord in route_data["features"][0]["geometry"]["coordinates"]
        ]
        folium.PolyLine(locations=route_coordinates, color='blue', weight=3).add_to(m)
        time.sleep(2)

if __name__ == '__main__':
    main()
`
