// Package simulation drives an engine.Agent through a movement sequence.
//
// A Simulation owns the run: it places the agent on a caller-supplied grid,
// applies every movement in order, records one Step per movement and hands
// each Step to its Reporters. Rejected movements are recorded and reported
// like any other step; they never stop the run.
//
// Usage:
//
//	sim, err := simulation.New(grid, script.Start)
//	if err != nil {
//		log.Fatal(err)
//	}
//	sim.AddReporter(simulation.NewTextReporter(os.Stdout))
//
//	result, err := sim.Run(ctx, script.Movements)
package simulation
