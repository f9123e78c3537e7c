package graphqlRoutes

// graphiqlPage is the interactive explorer served on GET /graphql.
const graphiqlPage = `<!DOCTYPE html>
<html>
<head>
	<title>LearnHub GraphiQL</title>
	<style>
		body { height: 100vh; margin: 0; }
		#graphiql { height: 100vh; }
	</style>
	<link rel="stylesheet" href="https://unpkg.com/graphiql@3/graphiql.min.css" />
</head>
<body>
	<div id="graphiql">Loading...</div>
	<script src="https://unpkg.com/react@18/umd/react.production.min.js"></script>
	<script src="https://unpkg.com/react-dom@18/umd/react-dom.production.min.js"></script>
	<script src="https://unpkg.com/graphiql@3/graphiql.min.js"></script>
	<script>
		const fetcher = GraphiQL.createFetcher({ url: '/graphql' });
		ReactDOM.createRoot(document.getElementById('graphiql')).render(
			React.createElement(GraphiQL, { fetcher: fetcher })
		);
	</script>
</body>
</html>
`
