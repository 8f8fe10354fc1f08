package topics

// The static catalog: three tiers of data-science topics plus the
// parent-child links between them.

var Nodes = []Node{
	// Tier 1: major categories
	{
		ID:          "ml",
		Title:       "Machine Learning",
		Description: "The field of study that gives computers the ability to learn without being explicitly programmed.",
		Tier:        1,
		Color:       "#00ffff",
		Resources: []CuratedResource{
			{Title: "Introduction to Machine Learning", URL: "https://example.com/ml-intro", Type: "article"},
			{Title: "ML Course by Andrew Ng", URL: "https://example.com/ml-course", Type: "course"},
		},
	},
	{
		ID:          "python",
		Title:       "Python",
		Description: "A high-level programming language widely used in data science and machine learning.",
		Tier:        1,
		Color:       "#00ffff",
		Resources: []CuratedResource{
			{Title: "Python Documentation", URL: "https://docs.python.org", Type: "documentation"},
		},
	},
	{
		ID:          "stats",
		Title:       "Statistics",
		Description: "The study of the collection, analysis, interpretation, and presentation of data.",
		Tier:        1,
		Color:       "#00ffff",
		Resources: []CuratedResource{
			{Title: "Statistics Fundamentals", URL: "https://example.com/stats", Type: "course"},
		},
	},

	// Tier 2: sub-categories
	{
		ID:          "supervised",
		Title:       "Supervised Learning",
		Description: "A type of machine learning where the model is trained on labeled data.",
		Tier:        2,
		Color:       "#ff00ff",
		Resources: []CuratedResource{
			{Title: "Supervised Learning Explained", URL: "https://example.com/supervised", Type: "article"},
			{Title: "Supervised Learning Tutorial", URL: "https://example.com/supervised-tutorial", Type: "video"},
		},
	},
	{
		ID:          "unsupervised",
		Title:       "Unsupervised Learning",
		Description: "A type of machine learning that finds patterns in data without labeled examples.",
		Tier:        2,
		Color:       "#ff00ff",
		Resources: []CuratedResource{
			{Title: "Unsupervised Learning Guide", URL: "https://example.com/unsupervised", Type: "article"},
		},
	},
	{
		ID:          "pandas",
		Title:       "Pandas",
		Description: "A powerful data manipulation and analysis library for Python.",
		Tier:        2,
		Color:       "#ff00ff",
		Resources: []CuratedResource{
			{Title: "Pandas Documentation", URL: "https://pandas.pydata.org/docs/", Type: "documentation"},
		},
	},
	{
		ID:          "numpy",
		Title:       "NumPy",
		Description: "A fundamental package for scientific computing with Python.",
		Tier:        2,
		Color:       "#ff00ff",
		Resources: []CuratedResource{
			{Title: "NumPy Documentation", URL: "https://numpy.org/doc/", Type: "documentation"},
		},
	},

	// Tier 3: specific tools and concepts
	{
		ID:          "lightgbm",
		Title:       "LightGBM",
		Description: "A gradient boosting framework that uses tree based learning algorithms.",
		Tier:        3,
		Color:       "#ffff00",
		Resources: []CuratedResource{
			{Title: "LightGBM Documentation", URL: "https://lightgbm.readthedocs.io/", Type: "documentation"},
			{Title: "LightGBM Tutorial", URL: "https://example.com/lightgbm-tutorial", Type: "article"},
		},
	},
	{
		ID:          "xgboost",
		Title:       "XGBoost",
		Description: "An optimized distributed gradient boosting library designed to be highly efficient.",
		Tier:        3,
		Color:       "#ffff00",
		Resources: []CuratedResource{
			{Title: "XGBoost Documentation", URL: "https://xgboost.readthedocs.io/", Type: "documentation"},
		},
	},
	{
		ID:          "optuna",
		Title:       "Optuna",
		Description: "An automatic hyperparameter optimization software framework.",
		Tier:        3,
		Color:       "#ffff00",
		Resources: []CuratedResource{
			{Title: "Optuna Documentation", URL: "https://optuna.org/", Type: "documentation"},
			{Title: "Hyperparameter Tuning with Optuna", URL: "https://example.com/optuna-tutorial", Type: "article"},
		},
	},
	{
		ID:          "sklearn",
		Title:       "Scikit-learn",
		Description: "A machine learning library for Python built on NumPy, SciPy, and matplotlib.",
		Tier:        3,
		Color:       "#ffff00",
		Resources: []CuratedResource{
			{Title: "Scikit-learn Documentation", URL: "https://scikit-learn.org/stable/", Type: "documentation"},
		},
	},
}

var Links = []Link{
	// ML connections
	{Source: "ml", Target: "supervised"},
	{Source: "ml", Target: "unsupervised"},
	{Source: "supervised", Target: "lightgbm"},
	{Source: "supervised", Target: "xgboost"},
	{Source: "supervised", Target: "sklearn"},
	{Source: "ml", Target: "optuna"},

	// Python connections
	{Source: "python", Target: "pandas"},
	{Source: "python", Target: "numpy"},
	{Source: "python", Target: "sklearn"},
	{Source: "python", Target: "lightgbm"},
	{Source: "python", Target: "xgboost"},
	{Source: "python", Target: "optuna"},

	// Cross connections
	{Source: "stats", Target: "ml"},
	{Source: "pandas", Target: "sklearn"},
	{Source: "numpy", Target: "sklearn"},
}
